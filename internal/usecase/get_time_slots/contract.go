package get_time_slots

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
}
