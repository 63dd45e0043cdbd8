package tape

import (
	"strings"
	"time"
)

// CommandType names a tape command.
type CommandType string

// Command types, one per host bridge command plus Sleep.
const (
	CommandTypeNewWindow     CommandType = "NewWindow"
	CommandTypeMoveWindow    CommandType = "MoveWindow"
	CommandTypeToggleWindow  CommandType = "ToggleWindow"
	CommandTypeResizeDock    CommandType = "ResizeDock"
	CommandTypeOpenSelector  CommandType = "OpenSelector"
	CommandTypeCloseSelector CommandType = "CloseSelector"
	CommandTypeResizeWindow  CommandType = "ResizeWindow"
	CommandTypeResize        CommandType = "Resize"
	CommandTypeSleep         CommandType = "Sleep"
)

// CommandTypes lists every command in the order the docs present them.
func CommandTypes() []CommandType {
	return []CommandType{
		CommandTypeNewWindow,
		CommandTypeMoveWindow,
		CommandTypeToggleWindow,
		CommandTypeResizeDock,
		CommandTypeOpenSelector,
		CommandTypeCloseSelector,
		CommandTypeResizeWindow,
		CommandTypeResize,
		CommandTypeSleep,
	}
}

// RequestCenterFlag is the NewWindow argument that shows the window in the
// center dock right away.
const RequestCenterFlag = "RequestCenter"

// Command is one parsed tape line. Args hold the validated arguments in
// their source form; Delay is set for Sleep.
type Command struct {
	Type  CommandType
	Args  []string
	Delay time.Duration
	Line  int
}

// String formats the command back into tape syntax.
func (c Command) String() string {
	parts := []string{string(c.Type)}
	if c.Type == CommandTypeSleep {
		return string(c.Type) + " " + c.Delay.String()
	}
	for i, a := range c.Args {
		if c.Type == CommandTypeNewWindow && i > 0 && a != RequestCenterFlag {
			a = `"` + strings.ReplaceAll(strings.ReplaceAll(a, `\`, `\\`), `"`, `\"`) + `"`
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
