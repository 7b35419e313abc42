package calculation

// Logger receives diagnostic output from the engine
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...interface{}) {}
func (NopLogger) Infof(format string, args ...interface{})  {}
func (NopLogger) Warnf(format string, args ...interface{})  {}
func (NopLogger) Errorf(format string, args ...interface{}) {}
