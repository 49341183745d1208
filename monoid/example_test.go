package monoid_test

import (
	"fmt"

	"github.com/hasbyte1/go-haskell-utils/monoid"
)

func ExampleMustCombine() {
	fmt.Println(monoid.MustCombine(7, 8))
	fmt.Println(monoid.MustCombine("foo", "bar"))
	fmt.Println(monoid.MustCombine([]int{1, 2}, []int{3}))
	// Output:
	// 15
	// foobar
	// [1 2 3]
}

func ExampleMustIdentityOf() {
	fmt.Println(monoid.MustIdentityOf(42))
	fmt.Printf("%q\n", monoid.MustIdentityOf("hello"))
	fmt.Println(monoid.MustIdentityOf([]string{"a"}))
	// Output:
	// 0
	// ""
	// []
}

func ExampleConcat() {
	fmt.Println(monoid.Concat(1, 2, 3, 4))
	fmt.Println(monoid.Concat("ha", "sk", "ell"))
	// Output:
	// 10
	// haskell
}

func ExampleFold() {
	fmt.Println(monoid.Fold(trail{"read"}, trail{"eval"}, trail{"print"}))
	// Output: [read eval print]
}
