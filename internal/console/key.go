package console

// Key is the abstract identity of a single key press.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyConfirm
	KeyCancel
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyConfirm:
		return "confirm"
	case KeyCancel:
		return "cancel"
	}
	return "other"
}

const (
	esc   = 0x1b
	ctrlC = 0x03
)

// DecodeKey maps one raw key sequence read from a terminal in raw mode.
// Arrow keys arrive as CSI (ESC [ A) or SS3 (ESC O A) sequences depending
// on the terminal's cursor key mode.
func DecodeKey(seq []byte) Key {
	if len(seq) == 0 {
		return KeyOther
	}
	if seq[0] == esc {
		if len(seq) == 3 && (seq[1] == '[' || seq[1] == 'O') {
			switch seq[2] {
			case 'A':
				return KeyUp
			case 'B':
				return KeyDown
			}
		}
		return KeyOther
	}
	if len(seq) != 1 {
		return KeyOther
	}
	switch seq[0] {
	case '\r', '\n':
		return KeyConfirm
	case 'x', 'X', ctrlC:
		return KeyCancel
	}
	return KeyOther
}
