package condition

import (
	"fmt"
	"sort"
	"syscall"

	"codeberg.org/mutker/faultctl/internal/errors"
)

// Errc enumerates the known symbolic conditions. Values are taken from
// the platform errno namespace, so an Errc converts directly into the
// integer code of its generic-category Condition.
type Errc int

const (
	AddressInUse                Errc = Errc(syscall.EADDRINUSE)
	AddressNotAvailable         Errc = Errc(syscall.EADDRNOTAVAIL)
	BadFileDescriptor           Errc = Errc(syscall.EBADF)
	BrokenPipe                  Errc = Errc(syscall.EPIPE)
	ConnectionAborted           Errc = Errc(syscall.ECONNABORTED)
	ConnectionRefused           Errc = Errc(syscall.ECONNREFUSED)
	ConnectionReset             Errc = Errc(syscall.ECONNRESET)
	DeviceOrResourceBusy        Errc = Errc(syscall.EBUSY)
	DirectoryNotEmpty           Errc = Errc(syscall.ENOTEMPTY)
	FileExists                  Errc = Errc(syscall.EEXIST)
	FileTooLarge                Errc = Errc(syscall.EFBIG)
	FilenameTooLong             Errc = Errc(syscall.ENAMETOOLONG)
	FunctionNotSupported        Errc = Errc(syscall.ENOSYS)
	HostUnreachable             Errc = Errc(syscall.EHOSTUNREACH)
	Interrupted                 Errc = Errc(syscall.EINTR)
	InvalidArgument             Errc = Errc(syscall.EINVAL)
	IOError                     Errc = Errc(syscall.EIO)
	IsADirectory                Errc = Errc(syscall.EISDIR)
	NetworkDown                 Errc = Errc(syscall.ENETDOWN)
	NetworkUnreachable          Errc = Errc(syscall.ENETUNREACH)
	NoSpaceOnDevice             Errc = Errc(syscall.ENOSPC)
	NoSuchDevice                Errc = Errc(syscall.ENODEV)
	NoSuchFileOrDirectory       Errc = Errc(syscall.ENOENT)
	NoSuchProcess               Errc = Errc(syscall.ESRCH)
	NotADirectory               Errc = Errc(syscall.ENOTDIR)
	NotConnected                Errc = Errc(syscall.ENOTCONN)
	NotEnoughMemory             Errc = Errc(syscall.ENOMEM)
	NotSupported                Errc = Errc(syscall.ENOTSUP)
	OperationCanceled           Errc = Errc(syscall.ECANCELED)
	OperationNotPermitted       Errc = Errc(syscall.EPERM)
	PermissionDenied            Errc = Errc(syscall.EACCES)
	ReadOnlyFileSystem          Errc = Errc(syscall.EROFS)
	ResourceUnavailableTryAgain Errc = Errc(syscall.EAGAIN)
	TextFileBusy                Errc = Errc(syscall.ETXTBSY)
	TimedOut                    Errc = Errc(syscall.ETIMEDOUT)
	TooManyOpenFiles            Errc = Errc(syscall.EMFILE)
	TooManyOpenFilesInSystem    Errc = Errc(syscall.ENFILE)
)

// Symbolic names for the enumeration, used on the flag/config surface
var errcNames = map[Errc]string{
	AddressInUse:                "address_in_use",
	AddressNotAvailable:         "address_not_available",
	BadFileDescriptor:           "bad_file_descriptor",
	BrokenPipe:                  "broken_pipe",
	ConnectionAborted:           "connection_aborted",
	ConnectionRefused:           "connection_refused",
	ConnectionReset:             "connection_reset",
	DeviceOrResourceBusy:        "device_or_resource_busy",
	DirectoryNotEmpty:           "directory_not_empty",
	FileExists:                  "file_exists",
	FileTooLarge:                "file_too_large",
	FilenameTooLong:             "filename_too_long",
	FunctionNotSupported:        "function_not_supported",
	HostUnreachable:             "host_unreachable",
	Interrupted:                 "interrupted",
	InvalidArgument:             "invalid_argument",
	IOError:                     "io_error",
	IsADirectory:                "is_a_directory",
	NetworkDown:                 "network_down",
	NetworkUnreachable:          "network_unreachable",
	NoSpaceOnDevice:             "no_space_on_device",
	NoSuchDevice:                "no_such_device",
	NoSuchFileOrDirectory:       "no_such_file_or_directory",
	NoSuchProcess:               "no_such_process",
	NotADirectory:               "not_a_directory",
	NotConnected:                "not_connected",
	NotEnoughMemory:             "not_enough_memory",
	NotSupported:                "not_supported",
	OperationCanceled:           "operation_canceled",
	OperationNotPermitted:       "operation_not_permitted",
	PermissionDenied:            "permission_denied",
	ReadOnlyFileSystem:          "read_only_file_system",
	ResourceUnavailableTryAgain: "resource_unavailable_try_again",
	TextFileBusy:                "text_file_busy",
	TimedOut:                    "timed_out",
	TooManyOpenFiles:            "too_many_open_files",
	TooManyOpenFilesInSystem:    "too_many_open_files_in_system",
}

// Portable messages for the enumeration, matching strerror texts
var errcMessages = map[Errc]string{
	AddressInUse:                "Address already in use",
	AddressNotAvailable:         "Cannot assign requested address",
	BadFileDescriptor:           "Bad file descriptor",
	BrokenPipe:                  "Broken pipe",
	ConnectionAborted:           "Software caused connection abort",
	ConnectionRefused:           "Connection refused",
	ConnectionReset:             "Connection reset by peer",
	DeviceOrResourceBusy:        "Device or resource busy",
	DirectoryNotEmpty:           "Directory not empty",
	FileExists:                  "File exists",
	FileTooLarge:                "File too large",
	FilenameTooLong:             "File name too long",
	FunctionNotSupported:        "Function not implemented",
	HostUnreachable:             "No route to host",
	Interrupted:                 "Interrupted system call",
	InvalidArgument:             "Invalid argument",
	IOError:                     "Input/output error",
	IsADirectory:                "Is a directory",
	NetworkDown:                 "Network is down",
	NetworkUnreachable:          "Network is unreachable",
	NoSpaceOnDevice:             "No space left on device",
	NoSuchDevice:                "No such device",
	NoSuchFileOrDirectory:       "No such file or directory",
	NoSuchProcess:               "No such process",
	NotADirectory:               "Not a directory",
	NotConnected:                "Transport endpoint is not connected",
	NotEnoughMemory:             "Cannot allocate memory",
	NotSupported:                "Operation not supported",
	OperationCanceled:           "Operation canceled",
	OperationNotPermitted:       "Operation not permitted",
	PermissionDenied:            "Permission denied",
	ReadOnlyFileSystem:          "Read-only file system",
	ResourceUnavailableTryAgain: "Resource temporarily unavailable",
	TextFileBusy:                "Text file busy",
	TimedOut:                    "Connection timed out",
	TooManyOpenFiles:            "Too many open files",
	TooManyOpenFilesInSystem:    "Too many open files in system",
}

var errcByName = make(map[string]Errc, len(errcNames))

func init() {
	for c, name := range errcNames {
		errcByName[name] = c
	}
}

// String returns the symbolic name of the condition
func (c Errc) String() string {
	if name, ok := errcNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Errc(%d)", int(c))
}

// ParseErrc resolves a symbolic name back to its enumerated condition.
// It is the only fallible classifier operation: names outside the
// enumeration fail with ErrUnknownCondition.
func ParseErrc(name string) (Errc, error) {
	errFactory := errors.New()

	c, ok := errcByName[name]
	if !ok {
		return 0, errFactory.WithData(ErrUnknownCondition, struct {
			Name string
		}{Name: name})
	}

	return c, nil
}

// Known returns the enumerated conditions in ascending numeric order.
func Known() []Errc {
	out := make([]Errc, 0, len(errcNames))
	for c := range errcNames {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
