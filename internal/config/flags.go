package config

import "flag"

var (
	Dev        bool
	LogPath    string
	ConfigPath string
	Check      bool
)

func Init() {
	flag.BoolVar(&Dev, "dev", false, "Development mode")
	flag.StringVar(&LogPath, "logPath", "", "Path to save the log file")
	flag.StringVar(&ConfigPath, "config", "", "Optional YAML settings file")
	flag.BoolVar(&Check, "check", false, "Probe /health of a running server and exit")
	flag.Parse()
}
