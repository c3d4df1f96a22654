package catalogservice

// Logger is the logging interface the client depends on
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
