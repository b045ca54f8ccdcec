package algorithms_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/concepts/algorithms"
)

func TestMoveBackward_NonOverlapping(t *testing.T) {
	src := []string{"foo", "bar", "baz"}
	dst := []string{"qux", "quux", "quuz", "corge"}

	start := algorithms.MoveBackward(src, dst)

	assert.Equal(t, 1, start)
	if diff := cmp.Diff([]string{"qux", "foo", "bar", "baz"}, dst); diff != "" {
		t.Errorf("dst mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "", ""}, src); diff != "" {
		t.Errorf("src should be moved-from (-want +got):\n%s", diff)
	}
}

func TestMoveBackward_Overlapping(t *testing.T) {
	s := []string{"snap", "crackle", "pop", "lock", "drop"}

	start := algorithms.MoveBackward(s[:3], s)

	assert.Equal(t, 2, start)
	if diff := cmp.Diff([]string{"", "", "snap", "crackle", "pop"}, s); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// TestMoveBackward_OverlapLeavesOutsideUntouched checks that nothing outside
// the union of the read and write windows changes.
func TestMoveBackward_OverlapLeavesOutsideUntouched(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5, 6, 7}

	// read s[1:4], write the slots ending at s[6] (s[3:6]).
	start := algorithms.MoveBackwardFunc(s[1:4], s[:6], algorithms.Copy[int])

	assert.Equal(t, 3, start)
	assert.Equal(t, []int{1, 2, 3}, s[3:6], "order preserved")
	assert.Equal(t, 0, s[0])
	assert.Equal(t, 6, s[6])
	assert.Equal(t, 7, s[7])
}

func TestMoveBackward_Properties(t *testing.T) {
	tests := []struct {
		name    string
		src     []int
		dstLen  int
		wantPos int
	}{
		{name: "empty source", src: nil, dstLen: 3, wantPos: 3},
		{name: "exact fit", src: []int{1, 2, 3}, dstLen: 3, wantPos: 0},
		{name: "room to spare", src: []int{7, 8}, dstLen: 6, wantPos: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := append([]int(nil), tt.src...)
			dst := make([]int, tt.dstLen)
			for i := range dst {
				dst[i] = -1
			}

			pos := algorithms.MoveBackwardFunc(tt.src, dst, algorithms.Copy[int])

			require.Equal(t, tt.wantPos, pos)
			if len(want) > 0 {
				assert.Equal(t, want, dst[pos:], "source order must end at dst end")
			}
			for _, v := range dst[:pos] {
				assert.Equal(t, -1, v, "slots before the range must be untouched")
			}
		})
	}
}

func TestMoveBackward_ShortDestinationPanics(t *testing.T) {
	assert.Panics(t, func() {
		algorithms.MoveBackward([]int{1, 2, 3}, make([]int, 2))
	})
}

func TestMove_SelfIsNoop(t *testing.T) {
	v := "keep"
	algorithms.Move(&v, &v)
	assert.Equal(t, "keep", v)
}

func TestCopy_LeavesSource(t *testing.T) {
	src, dst := 4, 0
	algorithms.Copy(&dst, &src)
	assert.Equal(t, 4, dst)
	assert.Equal(t, 4, src)
}
