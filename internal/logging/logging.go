package logging

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Setup configures the global logger from the LOG_LEVEL and LOG_FORMAT settings.
// Python-style names WARNING and CRITICAL are accepted. An unknown level falls back to info.
func Setup(level, format string) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(true)

	switch format {
	case "json":
		log.SetFormatter(log.JSONFormatter)
	case "logfmt":
		log.SetFormatter(log.LogfmtFormatter)
	default:
		log.SetFormatter(log.TextFormatter)
	}

	lvl, err := log.ParseLevel(normalizeLevel(level))
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.Warn("Unknown log level, using info", "level", level)
		return
	}
	log.SetLevel(lvl)
}

func normalizeLevel(level string) string {
	switch l := strings.ToLower(strings.TrimSpace(level)); l {
	case "warning":
		return "warn"
	case "critical":
		return "fatal"
	default:
		return l
	}
}
