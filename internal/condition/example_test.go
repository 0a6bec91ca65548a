package condition_test

import (
	"fmt"

	"codeberg.org/mutker/faultctl/internal/condition"
)

func fail() error {
	return condition.NewError(condition.Make(condition.NotSupported))
}

// Example mirrors the faultctl command: an operation raises a
// classified condition, the caller catches it at the top of the chain
// and reports the numeric value and the category name.
func Example() {
	err := fail()

	if cond, ok := condition.FromError(err); ok {
		fmt.Println(cond.Value())
		fmt.Println(cond.Category().Name())
	}

	// Output:
	// 95
	// generic
}

func ExampleMake() {
	cond := condition.Make(condition.PermissionDenied)

	fmt.Println(cond.String())
	fmt.Println(cond.Message())

	// Output:
	// generic:13
	// Permission denied
}

func ExampleParseErrc() {
	c, err := condition.ParseErrc("not_supported")
	if err != nil {
		return
	}

	fmt.Println(int(c))
	fmt.Println(condition.Make(c).Message())

	// Output:
	// 95
	// Operation not supported
}
