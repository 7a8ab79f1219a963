package render

import (
	"fmt"

	"github.com/lixenwraith/clinic-walk/status"
)

var rgbOverlayBg = RGB{0, 0, 0}

// DrawDebug lists metrics in a box at (x, y), at most maxRows rows
func DrawDebug(buf *Buffer, x, y, maxRows int, lines []status.Line) {
	if len(lines) == 0 || maxRows <= 0 {
		return
	}
	keyW := 0
	for _, l := range lines {
		keyW = max(keyW, len(l.Key))
	}
	for i, l := range lines {
		if i >= maxRows {
			break
		}
		buf.TextBg(x, y+i, fmt.Sprintf(" %-*s %s ", keyW, l.Key, l.Value), RGBDone, rgbOverlayBg, keyW+status.MaxLabelLen+3)
	}
}
