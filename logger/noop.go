package logger

type noopLogger struct{}

// NoopLogger constructs a Logger that drops every message,
// handy when exercising components that log as a side effect.
func NoopLogger() Logger { return noopLogger{} }

func (noopLogger) Debug(string, *LogContext) {}
func (noopLogger) Error(string, *LogContext) {}
func (noopLogger) Fatal(string, *LogContext) {}
func (noopLogger) Info(string, *LogContext)  {}
func (noopLogger) Warn(string, *LogContext)  {}
func (noopLogger) LogLevel() LogLevel        { return LogLevelUnk }
