package rootfind

import "strings"

// alarmIndent aligns continuation lines of a rendered Alarm with the value
// column of Result.String.
var alarmIndent = strings.Repeat(" ", labelWidth+len(labelSep))

// Alarm is the diagnostic log of one solving session.
//
// Entries are kept in the order they were detected. There is no removal,
// reordering or deduplication. Solve allocates a fresh Alarm per call and
// threads the same pointer through every solver it runs (including the
// Newton retry), so messages from all attempts end up in one list.
//
// An Alarm is not safe for concurrent use.
type Alarm struct {
	entries []string
}

// NewAlarm returns an empty diagnostic log.
func NewAlarm() *Alarm {
	return &Alarm{}
}

// Append records one diagnostic.
func (a *Alarm) Append(msg string) {
	a.entries = append(a.entries, msg)
}

// Len reports the number of recorded diagnostics.
func (a *Alarm) Len() int {
	return len(a.entries)
}

// Entries returns a copy of the recorded diagnostics.
func (a *Alarm) Entries() []string {
	if len(a.entries) == 0 {
		return nil
	}
	out := make([]string, len(a.entries))
	copy(out, a.entries)

	return out
}

// Render joins the entries for display: the first entry is unindented and
// each following entry starts on a new line aligned with the value column
// of Result.String. An empty log renders as "None".
func (a *Alarm) Render() string {
	return renderAlarm(a.entries)
}

// Fatal builds the error that terminates the current attempt. The returned
// *InputError carries a snapshot of every entry logged so far plus cause.
func (a *Alarm) Fatal(cause error) error {
	return &InputError{Alarm: a.Entries(), Cause: cause}
}

func renderAlarm(entries []string) string {
	if len(entries) == 0 {
		return "None"
	}

	return strings.Join(entries, "\n"+alarmIndent)
}
