package core

// Logger is the app-wide logging contract.
// Error and Fatal may receive extra args (wrapped errors, the acting teacher)
// that implementations forward to their reporting backend.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
