package forms

import (
	"fmt"
	"log/slog"
	"os"
)

// formsLogLevel controls the log level for framework logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var formsLogLevel = new(slog.LevelVar)

// formsLogger is the logger for control, layout and input debugging.
var formsLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: formsLogLevel}))

// SetVerbose enables or disables verbose/debug logging for the framework.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		formsLogLevel.Set(slog.LevelDebug)
	} else {
		formsLogLevel.Set(slog.LevelInfo)
	}
}

// formsVerbose returns true if debug logging is enabled.
func formsVerbose() bool {
	return formsLogLevel.Level() <= slog.LevelDebug
}

// strictContracts selects how programmer errors are reported.
// When enabled, contract violations panic so they surface immediately in
// development builds. When disabled, violations are logged and the offending
// call becomes a no-op with a neutral result.
var strictContracts bool

// SetStrictContracts toggles panicking on contract violations such as
// unknown animation properties or malformed state masks. Enable this in
// development and test builds; leave it off in release builds, where
// violations degrade to logged no-ops.
func SetStrictContracts(on bool) {
	strictContracts = on
}

// StrictContracts reports whether contract violations currently panic.
func StrictContracts() bool {
	return strictContracts
}

// contractViolationf reports a programmer error.
// Panics under strict contracts, otherwise logs at Error level.
func contractViolationf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if strictContracts {
		panic("forms: " + msg)
	}
	formsLogger.Error("contract violation", "detail", msg)
}
