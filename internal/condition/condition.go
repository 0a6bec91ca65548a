package condition

import "fmt"

// Condition is a classified system error condition: an errno-style
// integer value paired with the category that gives it meaning. The
// same integer means different things under different categories, so
// comparing Conditions compares category identity and value; the
// struct is comparable and == does exactly that. Conditions are
// immutable once constructed and copied by value as they propagate.
type Condition struct {
	value int
	cat   Category
}

// Make constructs a Condition in the generic category from a symbolic
// constant. It is pure and total: every enumerated Errc maps to a
// Condition and unknown symbolic names are unrepresentable.
func Make(c Errc) Condition {
	return Condition{
		value: int(c),
		cat:   Generic(),
	}
}

// FromErrno constructs a Condition in the system category from a raw
// OS-reported errno value.
func FromErrno(errno int) Condition {
	return Condition{
		value: errno,
		cat:   System(),
	}
}

// Value returns the integer code of the condition.
func (c Condition) Value() int {
	return c.value
}

// Category returns the category the value belongs to. The zero
// Condition belongs to the generic category.
func (c Condition) Category() Category {
	if c.cat == nil {
		return Generic()
	}

	return c.cat
}

// Message translates the condition's value through its category.
func (c Condition) Message() string {
	return c.Category().Message(c.value)
}

// String renders the condition as "category:value" for logs.
func (c Condition) String() string {
	return fmt.Sprintf("%s:%d", c.Category().Name(), c.value)
}

// IsZero reports whether the condition represents no error.
func (c Condition) IsZero() bool {
	return c.value == 0
}
