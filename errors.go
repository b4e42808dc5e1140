package i8080

import "errors"

// Error taxonomy. The CPU itself never returns an error — every opcode is
// total. Errors surface from the loader (malformed images) and from I/O
// adapters (unknown ports, disk state).
var (
	// ErrBadImageFormat is returned by LoadHex when a record's declared
	// length disagrees with the hex data actually present.
	ErrBadImageFormat = errors.New("i8080: malformed Intel HEX record")

	// ErrNoSuchDrive means a disk operation targeted an empty drive slot.
	// The disk command port reports this as controller status 0xFF, not as
	// a returned error; CPMAdapter.Boot returns it when drive 0 is empty.
	ErrNoSuchDrive = errors.New("i8080: no disk image in drive")

	// ErrPortUnknown is returned when an adapter is asked to read or write
	// a port it does not implement. Unlike ErrNoSuchDrive this is fatal:
	// the host should stop the machine.
	ErrPortUnknown = errors.New("i8080: unknown I/O port")

	// ErrWriteProtected means a disk write was silently dropped because
	// the target image is write-protected. Exported for tests; adapters
	// do not propagate it as a fault.
	ErrWriteProtected = errors.New("i8080: disk image is write-protected")
)
