package export

import (
	"fmt"
	"strings"
)

// SeriesToSVG plots a series such as per-frame render times as a polyline
// with a dashed budget line at limit. A non-positive limit omits the line.
func SeriesToSVG(values []float64, width, height int, stroke string, limit float64) string {
	if len(values) < 2 || width <= 0 || height <= 0 {
		return ""
	}

	top := limit
	for _, v := range values {
		top = max(top, v)
	}
	if top <= 0 {
		top = 1
	}
	top *= 1.1
	stepX := float64(width) / float64(len(values)-1)
	y := func(v float64) float64 { return float64(height) - v/top*float64(height) }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	if limit > 0 {
		fmt.Fprintf(&sb, `<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#ff4444" stroke-dasharray="4 4"/>
`, y(limit), width, y(limit))
	}

	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke)
	for i, v := range values {
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", 0.0, y(v))
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", float64(i)*stepX, y(v))
		}
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
