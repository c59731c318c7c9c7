package assoc_test

import (
	"fmt"

	"github.com/amp-labs/assoc/assoc"
	"github.com/amp-labs/assoc/compare"
)

type myKey int

const (
	keyA myKey = iota
	keyB
	keyC
)

func Example() {
	list := assoc.List[myKey, int]{{keyA, 1}, {keyB, 2}}

	list.Entry(keyC).OrInsert(3)

	v, ok := list.Get(keyC)
	fmt.Println(v, ok)

	list.Entry(keyA).AndModify(func(v *int) { *v++ }).OrInsert(9)

	v, ok = list.Get(keyA)
	fmt.Println(v, ok)
	// Output:
	// 3 true
	// 2 true
}

func ExampleEntry_OrInsert() {
	list := assoc.List[string, int]{{"a", 1}, {"b", 2}}

	fmt.Println(*list.Entry("c").OrInsert(3))
	fmt.Println(*list.Entry("c").OrInsert(4))
	fmt.Println(list.Len())
	// Output:
	// 3
	// 3
	// 3
}

func ExampleList_Remove() {
	list := assoc.List[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}

	list.Remove("b")

	for k, v := range list.All() {
		fmt.Println(k, v)
	}
	// Output:
	// a 1
	// c 3
}

func ExampleNewListFunc() {
	headers := assoc.NewListFunc[string, string](compare.EqualFold)
	headers.Insert("Content-Type", "text/plain")

	v, _ := headers.Get("content-type")
	fmt.Println(v)
	// Output: text/plain
}
