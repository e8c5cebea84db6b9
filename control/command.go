// Package control defines lightweight command messages used by the UI to
// request actions from the application loop. The loop is the only place
// widget state changes, so handlers never need to coordinate with each other.
package control

import "Chronodesk/calendar"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdPause
	CmdToggle
	CmdReset
	CmdLap
	CmdSettle
)

func (c CommandType) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdToggle:
		return "toggle"
	case CmdReset:
		return "reset"
	case CmdLap:
		return "lap"
	case CmdSettle:
		return "settle"
	}
	return "unknown"
}

// Command is the message sent to AppManager's loop. Field and Value are only
// used by CmdSettle. The optional Reply channel receives nil once the command
// has been applied and rendered.
type Command struct {
	Type  CommandType
	Field calendar.Field
	Value string
	Reply chan error // optional reply channel
}
