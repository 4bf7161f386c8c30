package viewport

// Command is a discrete input action applied to the controller. The
// GUI and TUI layers translate raw key and mouse events into commands;
// the controller consumes them synchronously.
type Command int

const (
	CmdNone Command = iota
	CmdZoomIn
	CmdZoomOut
	CmdSetCenter
	CmdMoreIterations
	CmdFewerIterations
	CmdReset
)

// Zoom step shared by the keyboard bindings: one step doubles or halves
// the magnification.
const (
	ZoomInFactor  = 0.5
	ZoomOutFactor = 2.0
)

// IterationStep is the factor applied per iteration-bound adjustment.
const IterationStep = 2.0

// Apply executes a command. Commands that take a pixel argument
// (CmdSetCenter, and zooms when focus is true) use px, py; the rest
// ignore them.
func (c *Controller) Apply(cmd Command, px, py int, focus bool) {
	switch cmd {
	case CmdZoomIn:
		if focus {
			c.ZoomAt(ZoomInFactor, px, py)
		} else {
			c.Zoom(ZoomInFactor)
		}
	case CmdZoomOut:
		if focus {
			c.ZoomAt(ZoomOutFactor, px, py)
		} else {
			c.Zoom(ZoomOutFactor)
		}
	case CmdSetCenter:
		c.CenterAt(px, py)
	case CmdMoreIterations:
		c.ScaleIterations(IterationStep)
	case CmdFewerIterations:
		c.ScaleIterations(1 / IterationStep)
	case CmdReset:
		c.Reset()
	}
}
