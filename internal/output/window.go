package output

import (
	"fmt"
	"io"

	"github.com/mj1618/get-window-id/internal/model"
)

// PrintID writes the window number followed by a newline.
func PrintID(w io.Writer, win model.Window) error {
	_, err := fmt.Fprintf(w, "%d\n", win.ID)
	return err
}

// PrintBounds writes a single-line JSON record of the window id and bounds.
// Keys and separators are fixed so scripts can match the line byte for byte:
//
//	{"id": 42, "x": 10, "y": 20, "width": 800, "height": 600}
func PrintBounds(w io.Writer, win model.Window) error {
	_, err := fmt.Fprintf(w, "{\"id\": %d, \"x\": %d, \"y\": %d, \"width\": %d, \"height\": %d}\n",
		win.ID, win.Bounds.X, win.Bounds.Y, win.Bounds.Width, win.Bounds.Height)
	return err
}
