//go:build darwin

package darwin

import "github.com/mj1618/get-window-id/internal/model"

// missingLayer is assigned when the window server omits kCGWindowLayer, so the
// window never counts as a normal application window.
const missingLayer = 999

// rawWindow holds the attributes read from one kCGWindowList dictionary
// before defaults are applied.
type rawWindow struct {
	owner     string
	title     string
	pid       int
	layer     int
	hasLayer  bool
	number    int
	hasNumber bool
	x, y      float64
	width     float64
	height    float64
}

// window applies defaults for missing attributes. Bounds are reported in
// fractional points and truncate toward zero.
func (r rawWindow) window() model.Window {
	w := model.Window{
		App:   r.owner,
		PID:   r.pid,
		Title: r.title,
		Layer: missingLayer,
		Bounds: model.Bounds{
			X:      int(r.x),
			Y:      int(r.y),
			Width:  int(r.width),
			Height: int(r.height),
		},
	}
	if r.hasLayer {
		w.Layer = r.layer
	}
	if r.hasNumber {
		w.ID = r.number
	}
	return w
}
