package editor

// Key is a keystroke the dropdown reacts to.
type Key int

const (
	KeyUp Key = iota + 1
	KeyDown
	KeyEnter
	KeyTab
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyEscape:
		return "escape"
	default:
		return "unknown"
	}
}
