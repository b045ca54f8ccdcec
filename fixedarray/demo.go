package fixedarray

import (
	"errors"
	"fmt"
	"io"
)

// Demo runs the container tour, one numbered section per feature.
func Demo(w io.Writer) {
	demos := []func(io.Writer){
		demoConstruct,
		demoFillSwap,
		demoData,
		demoSort,
		demoMinMax,
		demoAdjacent,
		demoSum,
		demoCount,
		demoCountIf,
	}
	for i, d := range demos {
		fmt.Fprintf(w, "\ntest%d=========================\n", i+1)
		d(w)
	}
}

func demoConstruct(w io.Writer) {
	arr1 := Of(1, 2, 3, 4, 5)
	arr2 := New[int](5) // zero values, not garbage

	fmt.Fprintln(w, arr1)
	fmt.Fprintln(w, arr2)

	if err := arr2.Assign(10, 20, 30, 40, 50); err != nil {
		fmt.Fprintf(w, "Assign: %v\n", err)
	}
	fmt.Fprintln(w, arr1)
	fmt.Fprintln(w, arr2)

	fmt.Fprintf(w, "Size of arr1 is: %d\n", arr1.Len())
	fmt.Fprintf(w, "Size of arr2 is: %d\n", arr2.Len())

	arr1.Set(0, 1000) // no bounds check of its own
	if err := arr1.SetAt(1, 2000); err != nil {
		fmt.Fprintf(w, "SetAt(1): %v\n", err)
	}
	fmt.Fprintln(w, arr1)

	// ── Checked access reports, it does not panic ────────────────────────────
	if err := arr1.SetAt(5, 1); errors.Is(err, ErrOutOfRange) {
		fmt.Fprintf(w, "SetAt(5): %v\n", err)
	}

	fmt.Fprintf(w, "Front of arr2 is: %d\n", arr2.Front())
	fmt.Fprintf(w, "Back of arr2 is: %d\n", arr2.Back())
}

func demoFillSwap(w io.Writer) {
	arr1 := Of(1, 2, 3, 4, 5)
	arr2 := Of(10, 20, 30, 40, 50)
	fmt.Fprintln(w, arr1)
	fmt.Fprintln(w, arr2)

	arr1.Fill(0)
	fmt.Fprintln(w, arr1)
	fmt.Fprintln(w, arr2)

	if err := arr1.Swap(arr2); err != nil {
		fmt.Fprintf(w, "Swap: %v\n", err)
	}
	fmt.Fprintln(w, arr1)
	fmt.Fprintln(w, arr2)
}

func demoData(w io.Writer) {
	arr := Of(1, 2, 3, 4, 5)
	data := arr.Data()
	// Address of the first element: Data is a view, not a copy.
	fmt.Fprintf(w, "%p\n", &data[0])
}

func demoSort(w io.Writer) {
	arr := Of(1, 5, 3, 4, 2)
	Sort(arr)
	fmt.Fprintln(w, arr)
}

func demoMinMax(w io.Writer) {
	arr := Of(1, 5, 4, 3, 2)
	lo, hi := MinElement(arr), MaxElement(arr)
	fmt.Fprintf(w, "Min: %d and Max: %d\n", arr.Get(lo), arr.Get(hi))
}

func demoAdjacent(w io.Writer) {
	arr := Of(1, 5, 5, 3, 2)
	if i := AdjacentFind(arr); i >= 0 {
		fmt.Fprintf(w, "Adjacent element found with value: %d\n", arr.Get(i))
	} else {
		fmt.Fprintln(w, "No adjacent elements found")
	}
}

func demoSum(w io.Writer) {
	arr := Of(1, 5, 5, 3, 2)
	fmt.Fprintf(w, "Sum of the elements in arr is %d\n", Sum(arr, 0))
}

func demoCount(w io.Writer) {
	arr := Of(1, 5, 5, 3, 2, 5, 5, 3)
	fmt.Fprintf(w, "Found 5: %d times\n", Count(arr, 5))
}

func demoCountIf(w io.Writer) {
	arr := Of(1, 100, 5, 29, 2, 45, 5, 3)
	n := CountIf(arr, func(x int) bool { return x > 10 && x < 200 })
	fmt.Fprintf(w, "Found %d matches\n", n)
}
