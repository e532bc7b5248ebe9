package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTeluguCharsSample(t *testing.T) {
	assert.Equal(t, 42, utf8.RuneCountInString(TeluguChars))
}

func TestIsTelugu(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"english", "How do I apply for an Aadhaar card?", false},
		{"digits and punctuation", "1947 ? !", false},
		{"telugu question", "ఆధార్ కార్డ్ ఎలా చేయాలి?", true},
		{"mixed", "pension ఎలా", true},
		{"vowel sign only", "ా్", false},
		{"single consonant", "x హ y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTelugu(tt.message))
		})
	}
}

func TestBuildEnglish(t *testing.T) {
	got := Build("How do I get a ration card?")

	assert.True(t, strings.HasPrefix(got, SystemPrompt))
	assert.Contains(t, got, "\n\nUser Question: How do I get a ration card?\n\n")
	assert.Contains(t, got, "comprehensive answer in English")
	assert.NotContains(t, got, "(in Telugu)")
	assert.True(t, strings.HasSuffix(got, "Format your response with proper headings and bullet points."))
}

func TestBuildTelugu(t *testing.T) {
	message := "ఆధార్ కార్డ్ ఎలా చేయాలి?"
	got := Build(message)

	assert.True(t, strings.HasPrefix(got, SystemPrompt))
	assert.Contains(t, got, "\n\nUser Question (in Telugu): "+message+"\n\n")
	assert.Contains(t, got, "comprehensive answer in Telugu")
}

func TestBuildIsVerbatimAndDeterministic(t *testing.T) {
	message := `<b>"quotes" & {braces}</b>`
	assert.Equal(t, Build(message), Build(message))
	assert.Contains(t, Build(message), message)
}

func TestPromptTextKeepsTrailingSpaces(t *testing.T) {
	assert.Contains(t, SystemPrompt, "2. Property registration procedures  \n3. Income")
	assert.Contains(t, Build("voter id"), "2. Complete list of required documents  \n3. Fees")
	assert.Contains(t, Build("ఓటర్ ఐడి"), "2. Complete list of required documents\n3. Fees")
}
