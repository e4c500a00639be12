package lbytes

import (
	"fmt"
)

type (
	// Reader is a cursor over an immutable save file snapshot.
	// Several readers may share the same backing slice; each one only owns its offsets.
	Reader struct {
		bs           []byte
		position     int
		prevPosition int
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() error
	// FormIDIndex is the 3-byte, file local identifier that the form id table resolves
	// to a global form id.
	FormIDIndex uint32
	// ErrDecode is the only failure kind of the decoders. Offset is the start of the
	// field that failed to read.
	ErrDecode struct {
		Offset  int
		Message string
	}
)

const (
	Pipe = byte(0x7C)
)

func (r FormIDIndex) String() string {
	return fmt.Sprintf("0x%06X", uint32(r))
}

func (r ErrDecode) Error() string {
	return fmt.Sprintf("%s at 0x%08X", r.Message, r.Offset)
}
