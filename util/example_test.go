package util_test

import (
	"fmt"

	"github.com/katalvlaran/ndarray/util"
)

// ExampleForEachObject shows the deterministic, sorted-key iteration.
func ExampleForEachObject() {
	ages := map[string]int{"carol": 41, "alice": 34, "bob": 27}
	util.ForEachObject(ages, func(name string, age int) {
		fmt.Println(name, age)
	})
	// Output:
	// alice 34
	// bob 27
	// carol 41
}

// ExampleMap squares a slice element-wise.
func ExampleMap() {
	fmt.Println(util.Map([]int{1, 2, 3}, func(x int) int { return x * x }))
	// Output: [1 4 9]
}
