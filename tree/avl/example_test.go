package avl_test

import (
	"fmt"

	"go.lepak.sg/ordered/tree/avl"
)

func Example() {
	tr := avl.New[int]()
	for _, k := range []int{30, 10, 20, 40} {
		tr.Insert(k)
	}
	fmt.Println(tr.Values(), tr.Height())

	k, err := tr.Delete(40)
	fmt.Println(k, err)

	_, err = tr.Delete(40)
	fmt.Println(err)

	k, _ = tr.DeleteMin()
	fmt.Println(k, tr.Values())

	// Output:
	// [10 20 30 40] 3
	// 40 <nil>
	// avl: key not found
	// 10 [20 30]
}

func ExampleTree_With() {
	a := avl.New[string]()
	a.Insert("b")
	b := a.With("a")

	fmt.Println(a.Values(), b.Values())
	// Output: [b] [a b]
}
