package models

// WindowSize is a fixed window preset in device independent pixels.
type WindowSize struct {
	Width  float32
	Height float32
}

var (
	CompactWindow = WindowSize{Width: 300, Height: 375}
	WideWindow    = WindowSize{Width: 475, Height: 375}
)

// Mode holds the area-panel flag. The window size follows from it.
type Mode struct {
	areaVisible bool
}

// Toggle flips the flag and returns the new value.
func (m *Mode) Toggle() bool {
	m.areaVisible = !m.areaVisible
	return m.areaVisible
}

func (m *Mode) AreaVisible() bool {
	return m.areaVisible
}

func (m *Mode) WindowSize() WindowSize {
	if m.areaVisible {
		return WideWindow
	}
	return CompactWindow
}
