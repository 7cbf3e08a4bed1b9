package core

// Color names a display color used by the renderer.
// The platform layer maps these to terminal styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray          // absent letters
	ColorYellow        // present letters
	ColorBlue          // exact letters, win banner
	ColorRed           // notices, tried keys
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorGray:
		return "gray"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	default:
		return "default"
	}
}
