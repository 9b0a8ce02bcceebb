package preview

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// halfBlocks scales img to cols x rows*2 pixels and encodes each pair of
// vertically adjacent pixels as one upper-half-block cell in 24-bit colour.
func halfBlocks(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 || img.Bounds().Empty() {
		return ""
	}
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	var sb strings.Builder
	sb.Grow(cols * rows * 40)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := dst.RGBAAt(x, 2*y)
			bot := dst.RGBAAt(x, 2*y+1)
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
		sb.WriteString("\x1b[0m")
		if y < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
