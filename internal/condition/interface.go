// Package condition classifies system error conditions into a numeric
// code paired with the category that gives the code its meaning.
package condition

// Category names a condition namespace and translates its values into
// human-readable messages. Implementations are process-wide singletons,
// immutable after initialization and safe for concurrent readers.
type Category interface {
	// Name identifies the namespace, e.g. "generic" or "system".
	Name() string
	// Message translates a condition value into a human-readable string.
	Message(value int) string
}
