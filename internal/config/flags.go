package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the userbot's command-line flags from args.
//
// Flags:
//
//	-config-record configuration record path
//	-session transport session file path
//	-send-delay pause after each send (e.g., "1.5s")
//	-wrap wrap width of copied messages
//	-limit default number of copied messages
//	-clipboard also put copied messages on the clipboard
//	-log log file path
//	-c/-config json file path with settings
func ParseFlags(args []string) (*StructuredConfig, error) {
	var configPath string
	var sessionPath string
	var sendDelay time.Duration
	var wrapWidth int
	var copyLimit int
	var clipboard bool
	var logPath string
	var jsonConfigPath string

	fs := flag.NewFlagSet("userbot", flag.ContinueOnError)
	fs.StringVar(&configPath, "config-record", "", "Configuration record path")
	fs.StringVar(&sessionPath, "session", "", "Session file path")
	fs.DurationVar(&sendDelay, "send-delay", 0, "Delay after each send (e.g., 1.5s)")
	fs.IntVar(&wrapWidth, "wrap", 0, "Wrap width of copied messages")
	fs.IntVar(&copyLimit, "limit", 0, "Default number of copied messages")
	fs.BoolVar(&clipboard, "clipboard", false, "Also copy messages to the clipboard")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SendDelay: sendDelay,
			WrapWidth: wrapWidth,
			CopyLimit: copyLimit,
			Clipboard: clipboard,
		},
		Storage: Storage{
			ConfigPath:  configPath,
			SessionPath: sessionPath,
		},
		Log:          Log{Path: logPath},
		JSONFilePath: jsonConfigPath,
	}, nil
}
