package misc

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

// Severity is the level an error is logged at by CheckError.
type Severity int

const (
	Fatal Severity = iota
	Error
	Warning
	Info
	Debug
)

var severityNames = [...]string{"Fatal", "Error", "Warning", "Info", "Debug"}

func (s Severity) String() string {
	if s < Fatal || s > Debug {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// CheckError logs err at the given severity and reports whether there was an error. Fatal, and any unknown
// severity, exits the process.
func CheckError(err error, logger bslogger.Logger, severity Severity) bool {
	if err == nil {
		return false
	}

	switch severity {
	case Error:
		logger.Errorf("%s", err)
	case Warning:
		logger.Warningf("%s", err)
	case Info:
		logger.Infof("%s", err)
	case Debug:
		logger.Debugf("%s", err)
	default:
		logger.Fatalf("%s", err)
	}
	return true
}
