package mystring

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// Heap hands out string buffers and counts what is still outstanding. The
// garbage collector does the actual freeing; Heap exists so ownership bugs
// (a double release, a leak) show up as numbers.
//
// Counters are atomic because a buffer dropped without Release is returned
// from the runtime's cleanup goroutine.
type Heap struct {
	allocs atomic.Int64
	frees  atomic.Int64
}

var defaultHeap = &Heap{}

// DefaultHeap is used by strings built without WithHeap.
func DefaultHeap() *Heap { return defaultHeap }

// buffer is one allocation. Ownership of a buffer moves between Strings by
// pointer; the release record goes with it.
type buffer struct {
	data []byte
	rel  *release
}

// release marks a buffer as returned to its heap. It is kept apart from
// buffer so the runtime cleanup can hold it without keeping buffer alive.
type release struct {
	heap *Heap
	done atomic.Bool
}

func (r *release) free() {
	if r.done.CompareAndSwap(false, true) {
		r.heap.frees.Add(1)
	}
}

func (h *Heap) alloc(n int) *buffer {
	h.allocs.Add(1)
	b := &buffer{data: make([]byte, n), rel: &release{heap: h}}
	runtime.AddCleanup(b, func(r *release) { r.free() }, b.rel)
	return b
}

// Allocs is the number of buffers handed out.
func (h *Heap) Allocs() int { return int(h.allocs.Load()) }

// Frees is the number of buffers released.
func (h *Heap) Frees() int { return int(h.frees.Load()) }

// Live is Allocs minus Frees.
func (h *Heap) Live() int { return h.Allocs() - h.Frees() }

func (h *Heap) String() string {
	return fmt.Sprintf("heap{allocs=%d frees=%d live=%d}", h.Allocs(), h.Frees(), h.Live())
}
