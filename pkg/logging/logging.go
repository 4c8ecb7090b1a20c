package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	// MaxLinePreviewLength is the maximum length of a raw input line to log
	MaxLinePreviewLength = 80
)

// NewLogger builds the process logger.
// "local" gets the human-readable development encoder, anything else JSON.
// Both write to stderr so stdout is left for the report.
func NewLogger(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "local" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// PreviewLine prepares a raw data line for logging.
// Control characters become spaces and the result is truncated to MaxLinePreviewLength.
func PreviewLine(line string) string {
	if line == "" {
		return ""
	}

	sanitized := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, line)

	return TruncateString(sanitized, MaxLinePreviewLength)
}

// TruncateString truncates a string to maxLen and adds ellipsis if needed
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
