package lbytes

import (
	"encoding/binary"
	"math"
)

// Builder lays out bytes the way Reader expects them. It only exists to build fixtures;
// nothing writes save files back.
type Builder struct {
	bs []byte
}

func NewBuilder() *Builder {
	return &Builder{bs: make([]byte, 0, 64)}
}

func (b *Builder) Bytes() []byte {
	return b.bs
}

func (b *Builder) Len() int {
	return len(b.bs)
}

func (b *Builder) pipe(withPipe bool) *Builder {
	if withPipe {
		b.bs = append(b.bs, Pipe)
	}
	return b
}

func (b *Builder) Pipe() *Builder {
	return b.pipe(true)
}

func (b *Builder) Raw(bs ...byte) *Builder {
	b.bs = append(b.bs, bs...)
	return b
}

func (b *Builder) Zeroes(n int) *Builder {
	b.bs = append(b.bs, make([]byte, n)...)
	return b
}

func (b *Builder) Uint8(value uint8, withPipe bool) *Builder {
	b.bs = append(b.bs, value)
	return b.pipe(withPipe)
}

func (b *Builder) Short(value int16, withPipe bool) *Builder {
	b.bs = binary.LittleEndian.AppendUint16(b.bs, uint16(value))
	return b.pipe(withPipe)
}

func (b *Builder) Int(value int32, withPipe bool) *Builder {
	b.bs = binary.LittleEndian.AppendUint32(b.bs, uint32(value))
	return b.pipe(withPipe)
}

func (b *Builder) Float(value float32, withPipe bool) *Builder {
	b.bs = binary.LittleEndian.AppendUint32(b.bs, math.Float32bits(value))
	return b.pipe(withPipe)
}

func (b *Builder) Double(value float64, withPipe bool) *Builder {
	b.bs = binary.LittleEndian.AppendUint64(b.bs, math.Float64bits(value))
	return b.pipe(withPipe)
}

func (b *Builder) String(value string, withPipe bool) *Builder {
	b.bs = append(b.bs, value...)
	return b.pipe(withPipe)
}

func (b *Builder) BString(value string, withPipe bool) *Builder {
	b.Short(int16(len(value)), withPipe)
	return b.String(value, withPipe)
}

func (b *Builder) FormIDIndex(index FormIDIndex, withPipe bool) *Builder {
	b.bs = append(b.bs, byte(index>>16), byte(index>>8), byte(index))
	return b.pipe(withPipe)
}

// Number writes value in numBytes little-endian bytes.
func (b *Builder) Number(value uint32, numBytes int) *Builder {
	for i := 0; i < numBytes; i++ {
		b.bs = append(b.bs, byte(value>>(8*i)))
	}
	return b
}

// Uvarint writes value in the smallest width that holds it, followed by a delimiter.
func (b *Builder) Uvarint(value uint32) *Builder {
	switch {
	case value < 1<<6:
		b.Number(value<<2, 1)
	case value < 1<<14:
		b.Number(value<<2|0b01, 2)
	default:
		b.Number(value<<2|0b10, 4)
	}
	return b.Pipe()
}
