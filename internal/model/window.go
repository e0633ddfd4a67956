package model

// Bounds represents a window rectangle in global screen points.
type Bounds struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Window describes one on-screen window as reported by the window server.
// Missing attributes are defaulted by the platform layer, never at use sites.
type Window struct {
	App    string `yaml:"app"             json:"app"`
	PID    int    `yaml:"pid,omitempty"   json:"pid,omitempty"`
	Title  string `yaml:"title,omitempty" json:"title,omitempty"`
	ID     int    `yaml:"id"              json:"id"`    // 0 = no window number reported
	Layer  int    `yaml:"layer"           json:"layer"` // 0 = normal application window
	Bounds Bounds `yaml:"bounds"          json:"bounds"`
}

// IsNormal reports whether the window sits on the normal application layer.
func (w Window) IsNormal() bool {
	return w.Layer == 0
}
