package handlers

// Bilingual texts returned to the browser. Telugu first, English second.
const (
	msgEmptyQuestion = "దయచేసి మీ ప్రశ్న టైప్ చేయండి (Please type your question)"
	msgTooLong       = "ప్రశ్న చాలా పెద్దది. దయచేసి చిన్నగా అడగండి (Question too long. Please keep it shorter)"
	msgTryAgain      = "దయచేసి మళ్ళీ ప్రయత్నించండి (Please try again)"

	msgNotJSON     = "Content-Type must be application/json"
	msgInvalidJSON = "Invalid JSON data"
)

const fallbackUnavailable = `క్షమించండి, ప్రస్తుతం AI సేవ అందుబాటులో లేదు. దయచేసి Gemini API కీ సెటప్ చేసి మళ్ళీ ప్రయత్నించండి.

Sorry, AI service is currently unavailable. Please setup Gemini API key and try again.

మీరు ఈ విషయాలను స్వయంగా తనిఖీ చేయవచ్చు:
1. ఆధార్ కార్డ్: uidai.gov.in
2. పెన్షన్: nsap.nic.in  
3. ఆదాయ సర్టిఫికేట్: webland.ap.gov.in (AP) లేదా webland.telangana.gov.in (TS)`

const fallbackEmpty = `క్షమించండి, ప్రస్తుతం AI సమాధానం రాలేదు. దయచేసి మీ ప్రశ్నను మరొకసారి అడగండి.

Sorry, couldn't generate AI response. Please try asking your question again.

సాధారణ సహాయం కోసం:
• ఆధార్ కార్డ్ హెల్ప్లైన్: 1947
• ప్రభుత్వ సేవల పోర్టల్: ap.gov.in లేదా telangana.gov.in`

const fallbackServerBusy = `క్షమించండి, ప్రస్తుతం సర్వర్ బిజీగా ఉంది. దయచేసి మళ్ళీ ప్రయత్నించండి.

Sorry, server is busy. Please try again.

తక్షణ సహాయం కోసం:
• ఆధార్ కేంద్రాలు: uidai.gov.in/contact-support
• ప్రభుత్వ హెల్ప్లైన్: 1100`
