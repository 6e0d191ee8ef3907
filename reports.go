package matvcol

import "fmt"

type ReportLevel int

const (
	ReportInfo ReportLevel = iota
	ReportWarning
	ReportError
)

func (l ReportLevel) String() string {
	switch l {
	case ReportInfo:
		return "INFO"
	case ReportWarning:
		return "WARNING"
	case ReportError:
		return "ERROR"
	}
	return fmt.Sprintf("ReportLevel(%d)", int(l))
}

// Report is a message shown to the user in the editor's status area.
type Report struct {
	Level    ReportLevel
	Operator string
	Message  string
}

// Reports collects user notifications until the UI drains them.
type Reports struct {
	entries []Report
}

func (r *Reports) Add(level ReportLevel, operator string, format string, args ...any) {
	r.entries = append(r.entries, Report{
		Level:    level,
		Operator: operator,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Reports) All() []Report {
	return append([]Report(nil), r.entries...)
}

func (r *Reports) Last() (Report, bool) {
	if len(r.entries) == 0 {
		return Report{}, false
	}
	return r.entries[len(r.entries)-1], true
}

// Drain returns all pending reports and forgets them.
func (r *Reports) Drain() []Report {
	res := r.entries
	r.entries = nil
	return res
}
