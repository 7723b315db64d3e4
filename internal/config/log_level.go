package config

// LogLevel is the closed set of log verbosity levels the add-on accepts.
type LogLevel string

const (
	LevelTrace   LogLevel = "trace"
	LevelDebug   LogLevel = "debug"
	LevelInfo    LogLevel = "info"
	LevelWarning LogLevel = "warning"
	LevelError   LogLevel = "error"
	LevelFatal   LogLevel = "fatal"
)

// logLevels is the membership set used for validation; the order of
// logLevelNames is the order shown in validation error messages.
var (
	logLevels = map[LogLevel]struct{}{
		LevelTrace:   {},
		LevelDebug:   {},
		LevelInfo:    {},
		LevelWarning: {},
		LevelError:   {},
		LevelFatal:   {},
	}

	logLevelNames = []string{
		string(LevelTrace),
		string(LevelDebug),
		string(LevelInfo),
		string(LevelWarning),
		string(LevelError),
		string(LevelFatal),
	}
)

// IsValid reports whether l is a member of the enumerated level set.
func (l LogLevel) IsValid() bool {
	_, ok := logLevels[l]
	return ok
}

// String returns the level as its canonical lower-case name.
func (l LogLevel) String() string {
	return string(l)
}
