package scoring

// Color is a semantic color token. Renderers (terminal, reports) map tokens
// to their own palette; the token choice itself is part of the scoring
// contract so every view colors the same way.
type Color string

const (
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
	ColorGray   Color = "gray"
)

var statusColors = map[Status]Color{
	StatusGreen:  ColorGreen,
	StatusOrange: ColorOrange,
	StatusRed:    ColorRed,
	StatusNotSet: ColorGray,
}

var statusLabels = map[Status]string{
	StatusGreen:  "On Track",
	StatusOrange: "Under Watch",
	StatusRed:    "Off Track",
	StatusNotSet: "Not Set",
}

// StatusColor maps a status to its semantic color.
func StatusColor(s Status) Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return ColorGray
}

// StatusLabel maps a status to its human label.
func StatusLabel(s Status) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return "Not Set"
}

// TrendColor maps a trend direction to its semantic color. For inverse
// metrics the up/down pair is swapped: a falling actual is favorable and a
// rising one is not. Every renderer must go through this function rather
// than hard-coding the pair.
func TrendColor(d Direction, inverse bool) Color {
	switch d {
	case DirectionUp:
		if inverse {
			return ColorRed
		}
		return ColorGreen
	case DirectionDown:
		if inverse {
			return ColorGreen
		}
		return ColorRed
	default:
		return ColorGray
	}
}
