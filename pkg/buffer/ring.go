package buffer

// Ring keeps the most recent lines of scrollback, dropping the oldest once
// capacity is reached. A capacity of zero or less means unbounded.
type Ring struct {
	lines    []string
	capacity int
	head     int // next write position once the ring is full
	full     bool
}

// NewRing creates a ring holding at most capacity lines.
func NewRing(capacity int) *Ring {
	if capacity < 0 {
		capacity = 0
	}
	r := &Ring{capacity: capacity}
	if capacity > 0 {
		r.lines = make([]string, 0, capacity)
	}
	return r
}

// Push appends a line, evicting the oldest one when the ring is full.
func (r *Ring) Push(line string) {
	if r.capacity == 0 || len(r.lines) < r.capacity {
		r.lines = append(r.lines, line)
		if r.capacity > 0 && len(r.lines) == r.capacity {
			r.full = true
		}
		return
	}

	r.lines[r.head] = line
	r.head = (r.head + 1) % r.capacity
}

// Lines returns the stored lines, oldest first.
func (r *Ring) Lines() []string {
	out := make([]string, 0, len(r.lines))
	if !r.full {
		return append(out, r.lines...)
	}
	out = append(out, r.lines[r.head:]...)
	return append(out, r.lines[:r.head]...)
}
