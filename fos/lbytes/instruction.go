package lbytes

import (
	"github.com/pkg/errors"
)

// ExecuteInstructions runs the read functions of a fixed layout in order, stopping at the
// first failure. Each read function stores its own result, which keeps the layouts
// declarative without reflection.
func ExecuteInstructions(instructions []Instruction) error {
	for _, instruction := range instructions {
		if err := instruction.ReadFunction(); err != nil {
			return errors.Wrapf(err, `ExecuteInstructions error reading key "%v"`, instruction.Key)
		}
	}
	return nil
}

func CreateIntReadFunction(reader *Reader, readPipe bool, into *int32) ReadFunction {
	return func() error {
		value, err := reader.ReadInt(readPipe)
		*into = value
		return err
	}
}

func CreateAssertIntReadFunction(reader *Reader, expected int32, readPipe bool) ReadFunction {
	return func() error {
		_, err := reader.AssertInt(expected, readPipe)
		return err
	}
}

func CreateUint32ReadFunction(reader *Reader, into *uint32) ReadFunction {
	return func() error {
		value, err := reader.ReadInt(false)
		*into = uint32(value)
		return err
	}
}

func CreateStringReadFunction(reader *Reader, n int, readPipe bool, into *string) ReadFunction {
	return func() error {
		value, err := reader.ReadString(n, readPipe)
		*into = value
		return err
	}
}

func CreateBStringReadFunction(reader *Reader, into *string) ReadFunction {
	return func() error {
		value, err := reader.ReadBString(true)
		*into = value
		return err
	}
}

func CreateSkipFunction(reader *Reader, n int) ReadFunction {
	return func() error {
		return reader.Skip(n)
	}
}
