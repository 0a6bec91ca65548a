package condition

import (
	"fmt"
	"syscall"
)

type genericCategory struct{}

func (*genericCategory) Name() string {
	return "generic"
}

// Message looks the value up in the portable message table. Values
// outside the enumeration still render, as "unknown error N".
func (*genericCategory) Message(value int) string {
	if msg, ok := errcMessages[Errc(value)]; ok {
		return msg
	}

	return fmt.Sprintf("unknown error %d", value)
}

type systemCategory struct{}

func (*systemCategory) Name() string {
	return "system"
}

// Message defers to the operating system's error string for the value.
func (*systemCategory) Message(value int) string {
	return syscall.Errno(value).Error()
}

var (
	generic = &genericCategory{}
	system  = &systemCategory{}
)

// Generic returns the portable errno category singleton. Conditions
// constructed from the Errc enumeration belong to it.
func Generic() Category {
	return generic
}

// System returns the OS-reported category singleton, for conditions
// carrying raw errno values as the platform reported them.
func System() Category {
	return system
}
