package core

// Divider reduces a fast, fixed frame rate to a slower simulation cadence.
// Tick is called once per frame and reports true on every Nth call.
type Divider struct {
	every int
	count int
}

// NewDivider returns a divider that fires once every `every` frames.
// Values below 1 fire on every frame.
func NewDivider(every int) *Divider {
	return &Divider{every: Max(1, every)}
}

// Tick counts one frame and reports whether the threshold was reached.
// The counter restarts after firing.
func (d *Divider) Tick() bool {
	d.count++
	if d.count >= d.every {
		d.count = 0
		return true
	}
	return false
}

// Reset clears the frame counter without changing the period.
func (d *Divider) Reset() {
	d.count = 0
}

// Every returns the number of frames per firing.
func (d *Divider) Every() int {
	return d.every
}
