package system

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// consolePaths are tried in order: the active VT first, then tty0.
var consolePaths = []string{"/dev/tty", "/dev/tty0"}

// Console switches the active virtual terminal between text and graphics
// mode around framebuffer output. Every step is best-effort and logged.
type Console struct {
	Logger Logger
}

// Acquire hides the cursor and enters graphics mode; Release undoes both.
func (c Console) Acquire() {
	c.logResult("KD_GRAPHICS set", SetGraphicsMode())
	c.logResult("cursor hidden", HideCursor())
}

func (c Console) Release() {
	c.logResult("cursor shown", ShowCursor())
	c.logResult("KD_TEXT set", RestoreTextMode())
}

func (c Console) logResult(ok string, err error) {
	if c.Logger == nil {
		return
	}
	if err != nil {
		c.Logger.Errorf("tty", "%v", err)
		return
	}
	c.Logger.Infof("tty", ok)
}
