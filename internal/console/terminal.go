package console

// Position is a zero-based cursor location relative to the last Clear.
type Position struct {
	Row int
	Col int
}

// Terminal is the surface the presentation layer draws on and reads keys
// from. All calls are synchronous; ReadKey blocks until one key arrives.
type Terminal interface {
	ReadKey() (Key, error)
	Write(s string)
	WriteLine(s string)
	Cursor() Position
	SetCursor(p Position)
	Clear()
	Foreground() Color
	SetForeground(c Color)
}
