package mystring

import (
	"fmt"
	"io"
)

// Demo walks through copy and move assignment on a private heap and prints
// the allocation counters after every step.
func Demo(w io.Writer) {
	h := &Heap{}
	step := func(label string) {
		fmt.Fprintf(w, "  %-34s %s\n", label, h)
	}

	// ── Construction ─────────────────────────────────────────────────────────
	fmt.Fprintln(w, "=== Construction ===")
	empty := New(WithHeap(h))
	a := FromText("Hello", WithHeap(h))
	empty.Display(w)
	a.Display(w)
	step("after FromText(\"Hello\")")

	// ── Copy assignment: two buffers, independent ────────────────────────────
	fmt.Fprintln(w, "\n=== Copy ===")
	b := FromText("Hola", WithHeap(h))
	b.CopyAssign(a)
	b.Bytes()[0] = 'J'
	a.Display(w)
	b.Display(w)
	step("after b.CopyAssign(a), b[0]='J'")

	// ── Move assignment: buffer changes hands, source empties ────────────────
	fmt.Fprintln(w, "\n=== Move ===")
	c := FromText("Bonjour", WithHeap(h))
	a.MoveAssign(c)
	a.Display(w)
	c.Display(w)
	step("after a.MoveAssign(c)")

	d := a.Take()
	d.Display(w)
	a.Display(w)
	step("after d := a.Take()")

	// ── Self-assignment is a no-op, not a use-after-release ──────────────────
	fmt.Fprintln(w, "\n=== Self-assignment ===")
	d.CopyAssign(d)
	d.MoveAssign(d)
	d.Display(w)
	step("after d = d (copy and move)")

	// ── Release everything exactly once ──────────────────────────────────────
	fmt.Fprintln(w, "\n=== Release ===")
	for _, s := range []*String{empty, a, b, c, d} {
		s.Release()
	}
	d.Release() // second release frees nothing
	step("after releasing all")
}
