// Package log is the stderr logger shared by brew-available packages.
// Standard output is reserved for listings.
package log

import (
	"os"

	"github.com/charmbracelet/log"
)

var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
	Prefix:          "brew-available",
	Level:           log.WarnLevel,
})

// SetDebug switches debug logging on or off.
func SetDebug(enabled bool) {
	if enabled {
		Logger.SetLevel(log.DebugLevel)
		return
	}
	Logger.SetLevel(log.WarnLevel)
}

// Debug logs a debug message.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}
