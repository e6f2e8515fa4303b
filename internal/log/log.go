// Package log provides the process-wide structured logger.
package log

import "sync"

// Logger is the logging facade used throughout strix.
type Logger interface {
	Trace(args ...interface{})
	Tracef(format string, args ...interface{})

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})

	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})

	WithField(field string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
	WithError(err error) Logger

	IsDebugEnabled() bool
}

var (
	mu     sync.Mutex
	logger Logger
)

// GetLogger returns the process logger, initializing a default console
// logger at info level on first use if Init was never called.
func GetLogger() Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = mustInit(DefaultConfig())
	}
	return logger
}

// Init configures the process logger. Later calls replace the earlier
// configuration; commands call it once after loading config.
func Init(cfg Config) error {
	l, err := initByConfig(cfg)
	if err != nil {
		return err
	}
	mu.Lock()
	logger = l
	mu.Unlock()
	return nil
}

func mustInit(cfg Config) Logger {
	l, err := initByConfig(cfg)
	if err != nil {
		panic(err)
	}
	return l
}
