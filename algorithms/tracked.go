package algorithms

import "strconv"

// Tracked is an int that remembers whether it still holds a specified value.
// Copying preserves the flag; moving clears it on the source.
type Tracked struct {
	Value     int
	Specified bool
}

// NewTracked returns a Tracked holding v in the specified state.
func NewTracked(v int) Tracked {
	return Tracked{Value: v, Specified: true}
}

// TrackedOf builds a slice of specified values, one per argument.
func TrackedOf(vals ...int) []Tracked {
	out := make([]Tracked, len(vals))
	for i, v := range vals {
		out[i] = NewTracked(v)
	}
	return out
}

// CopyFrom copies value and flag from src. src is not modified.
func (t *Tracked) CopyFrom(src *Tracked) {
	*t = *src
}

// MoveFrom takes value and flag from src and marks src unspecified. The
// value stays in src; only the flag tells it apart.
func (t *Tracked) MoveFrom(src *Tracked) {
	if t == src {
		return
	}
	t.Value = src.Value
	t.Specified = src.Specified
	src.Specified = false
}

func (t Tracked) String() string {
	if !t.Specified {
		return "."
	}
	return strconv.Itoa(t.Value)
}
