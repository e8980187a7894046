// Package input funnels asynchronous host samples (pointer, touch,
// scroll, viewport, visibility) into plain last-observed-value fields.
// The engine reads a snapshot once at the start of each step, so the
// simulation sees at most one value per field per frame regardless of
// how often the host delivers events.
package input

// DeviceClass selects the force-magnitude profile. It is decided once
// from the first viewport sample and never re-evaluated, so a device
// reporting both touch and pointer events cannot flicker between modes.
type DeviceClass int

const (
	DeviceDesktop DeviceClass = iota
	DeviceMobile
)

func (d DeviceClass) String() string {
	if d == DeviceMobile {
		return "mobile"
	}
	return "desktop"
}

// Samples holds the latest value of every external input. Last write
// wins; there is no queue and no ordering guarantee beyond "the value
// present when the next step reads it".
type Samples struct {
	PointerX      float64
	PointerY      float64
	PointerActive bool

	ScrollY float64

	ViewportW float64
	ViewportH float64

	Visible bool
	Device  DeviceClass
}

// NewSamples returns samples for a visible desktop viewport with no
// pointer activity.
func NewSamples(viewportW, viewportH float64, device DeviceClass) *Samples {
	return &Samples{
		ViewportW: viewportW,
		ViewportH: viewportH,
		Visible:   true,
		Device:    device,
	}
}

// SetPointer records a pointer or touch position.
func (s *Samples) SetPointer(x, y float64) {
	s.PointerX = x
	s.PointerY = y
	s.PointerActive = true
}

// ClearPointer records that the pointer left the surface.
func (s *Samples) ClearPointer() {
	s.PointerActive = false
}

// SetScroll records the cumulative scroll offset. Negative offsets are
// treated as zero.
func (s *Samples) SetScroll(y float64) {
	if y < 0 {
		y = 0
	}
	s.ScrollY = y
}

// SetViewport records a resize sample. The device class is not
// re-derived here.
func (s *Samples) SetViewport(w, h float64) {
	s.ViewportW = w
	s.ViewportH = h
}

// SetVisible records a host visibility change.
func (s *Samples) SetVisible(v bool) {
	s.Visible = v
}

// Snapshot returns the current values by copy. The engine calls this
// once per step so every force sees the same inputs.
func (s *Samples) Snapshot() Samples {
	return *s
}
