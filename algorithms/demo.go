package algorithms

import (
	"fmt"
	"io"
	"strings"
)

// MoveBackward copies from the tail so an overlapping destination to the
// right never overwrites an element that has not been read yet:
//
//	start:        [a b c d e]    MoveBackward(s[:3], s)
//	s[4] ← s[2]   [a b ∙ d c]
//	s[3] ← s[1]   [a ∙ ∙ b c]
//	s[2] ← s[0]   [∙ ∙ a b c]
//
// Walking front-to-back instead would overwrite c with a before reading it.

// DemoMoveBackward prints the non-overlapping and overlapping cases.
func DemoMoveBackward(w io.Writer) {
	// ── Non-overlapping: two independent slices ───────────────────────────────
	src := []string{"foo", "bar", "baz"}
	dst := []string{"qux", "quux", "quuz", "corge"}
	printStrings(w, "Non-overlapping case; before MoveBackward:", src, dst)
	start := MoveBackward(src, dst)
	printStrings(w, "After:", src, dst)
	fmt.Fprintf(w, "  relocated range starts at dst[%d]\n", start)

	// ── Overlapping: move the head of a slice onto its own tail ──────────────
	// src[:3] and src share a backing array; the destination ends further
	// right than the source, which is the case MoveBackward is built for.
	src = []string{"snap", "crackle", "pop", "lock", "drop"}
	printStrings(w, "\nOverlapping case; before MoveBackward:", src, nil)
	start = MoveBackward(src[:3], src)
	printStrings(w, "After:", src, nil)
	fmt.Fprintf(w, "  relocated range starts at src[%d]\n", start)
}

// DemoShiftLeft prints a move-tracking type, an int and a string column side
// by side, shifted by 3 and then by 8 (a no-op, 8 >= len).
func DemoShiftLeft(w io.Writer) {
	a := TrackedOf(1, 2, 3, 4, 5, 6, 7)
	b := []int{1, 2, 3, 4, 5, 6, 7}
	c := []string{"α", "β", "γ", "δ", "ε", "ζ", "η"}

	fmt.Fprintf(w, "  %-16s%-16s%s\n", "[]Tracked", "[]int", "[]string")
	printColumns(w, a, b, c)

	// Tracked records the move; int just copies (the stale tail stays
	// visible, like any trivially copyable value); string resets to "".
	ShiftLeftFunc(a, 3, (*Tracked).MoveFrom)
	ShiftLeftFunc(b, 3, Copy[int])
	ShiftLeft(c, 3)
	printColumns(w, a, b, c)

	ShiftLeftFunc(a, 8, (*Tracked).MoveFrom) // no effect: n >= len
	ShiftLeftFunc(b, 8, Copy[int])           // ditto
	ShiftLeft(c, 8)                          // ditto
	printColumns(w, a, b, c)

	// ShiftLeft(c, -3) is a precondition violation: it panics with an index
	// out of range rather than being clamped.
}

func printStrings(w io.Writer, comment string, src, dst []string) {
	fmt.Fprintln(w, comment)
	fmt.Fprintf(w, "src: %s\n", joinStrings(src, "∙"))
	if len(dst) == 0 {
		return
	}
	fmt.Fprintf(w, "dst: %s\n", joinStrings(dst, "∙"))
}

func printColumns(w io.Writer, a []Tracked, b []int, c []string) {
	var as, bs strings.Builder
	for _, v := range a {
		as.WriteString(v.String() + " ")
	}
	for _, v := range b {
		fmt.Fprintf(&bs, "%d ", v)
	}
	fmt.Fprintf(w, "  %-16s%-16s%s\n", as.String(), bs.String(), joinStrings(c, "."))
}

// joinStrings renders s space-separated, printing empty for "".
func joinStrings(s []string, empty string) string {
	var sb strings.Builder
	for _, v := range s {
		if v == "" {
			v = empty
		}
		sb.WriteString(v)
		sb.WriteByte(' ')
	}
	return sb.String()
}
