package logger

import "log"

// A LoggerOptFn is a functional option configuring a FormsLogger when constructing a new one.
type LoggerOptFn func(*FormsLogger)

// WithEnv sets the environment FormsLogger is operating in.
func WithEnv(env string) func(*FormsLogger) {
	return func(l *FormsLogger) {
		l.env = env
	}
}

// WithLevel sets the log level FormsLogger uses.
func WithLevel(level LogLevel) func(*FormsLogger) {
	return func(l *FormsLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger FormsLogger uses.
func WithLogger(log *log.Logger) func(*FormsLogger) {
	return func(l *FormsLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*FormsLogger) {
	return func(l *FormsLogger) {
		l.skip = skip
	}
}
