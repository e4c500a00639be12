package lbytes

import (
	"encoding/binary"
	"fmt"
	"math"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		bs: bs,
	}
}

// At creates an independent reader over the same bytes, starting at position.
func (r *Reader) At(position int) (*Reader, error) {
	reader := NewBytesReader(r.bs)
	if err := reader.Seek(position); err != nil {
		return nil, err
	}
	return reader, nil
}

// View creates an independent reader limited to the bytes before end and positioned at
// start. Positions stay absolute.
func (r *Reader) View(start int, end int) (*Reader, error) {
	if end < 0 || end > len(r.bs) {
		return nil, ErrDecode{
			Offset:  start,
			Message: fmt.Sprintf("view end 0x%08X is outside of the data (length 0x%08X)", end, len(r.bs)),
		}
	}
	reader := NewBytesReader(r.bs[:end])
	if err := reader.Seek(start); err != nil {
		return nil, err
	}
	return reader, nil
}

func (r *Reader) Len() int {
	return len(r.bs)
}

func (r *Reader) Remaining() int {
	return len(r.bs) - r.position
}

func (r *Reader) Position() int {
	return r.position
}

func (r *Reader) PrevPosition() int {
	return r.prevPosition
}

func (r *Reader) Seek(position int) error {
	if position < 0 || position > len(r.bs) {
		return ErrDecode{
			Offset:  r.position,
			Message: fmt.Sprintf("position 0x%08X is outside of the data (length 0x%08X)", position, len(r.bs)),
		}
	}
	r.position = position
	return nil
}

func (r *Reader) Skip(n int) error {
	r.recordPosition()
	return r.Seek(r.position + n)
}

func (r *Reader) recordPosition() {
	r.prevPosition = r.position
}

func (r *Reader) errorf(format string, args ...any) error {
	return ErrDecode{
		Offset:  r.prevPosition,
		Message: fmt.Sprintf(format, args...),
	}
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, r.errorf("unexpected end of data: need %d bytes, %d remaining", n, r.Remaining())
	}
	bs := r.bs[r.position : r.position+n]
	r.position += n
	return bs, nil
}

// readPipe consumes the delimiter following a field without recording its position,
// so that a mismatch is reported at the field itself.
func (r *Reader) readPipe(readPipe bool) error {
	if !readPipe {
		return nil
	}
	pipePosition := r.position
	bs, err := r.take(1)
	if err != nil {
		return err
	}
	if bs[0] != Pipe {
		return r.errorf("expected delimiter 0x%02X at 0x%08X, got 0x%02X", Pipe, pipePosition, bs[0])
	}
	return nil
}

// AssertPipe reads a single delimiter byte.
func (r *Reader) AssertPipe() error {
	r.recordPosition()
	return r.readPipe(true)
}

func (r *Reader) ReadBytes(n int) ([]byte, error) {
	r.recordPosition()
	bs, err := r.take(n)
	if err != nil {
		return nil, err
	}
	result := make([]byte, n)
	copy(result, bs)
	return result, nil
}

func (r *Reader) ReadUint8(readPipe bool) (uint8, error) {
	r.recordPosition()
	bs, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return bs[0], r.readPipe(readPipe)
}

func (r *Reader) AssertUint8(expected uint8, readPipe bool) (uint8, error) {
	r.recordPosition()
	bs, err := r.take(1)
	if err != nil {
		return 0, err
	}
	if bs[0] != expected {
		return 0, r.errorf("expected 0x%02X, got 0x%02X", expected, bs[0])
	}
	return bs[0], r.readPipe(readPipe)
}

func (r *Reader) ReadShort(readPipe bool) (int16, error) {
	r.recordPosition()
	bs, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(bs)), r.readPipe(readPipe)
}

func (r *Reader) ReadInt(readPipe bool) (int32, error) {
	r.recordPosition()
	bs, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(bs)), r.readPipe(readPipe)
}

func (r *Reader) AssertInt(expected int32, readPipe bool) (int32, error) {
	actual, err := r.ReadInt(readPipe)
	if err != nil {
		return 0, err
	}
	if actual != expected {
		return 0, r.errorf("expected 0x%08X, got 0x%08X", uint32(expected), uint32(actual))
	}
	return actual, nil
}

func (r *Reader) ReadLong(readPipe bool) (int64, error) {
	r.recordPosition()
	bs, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(bs)), r.readPipe(readPipe)
}

func (r *Reader) ReadFloat(readPipe bool) (float32, error) {
	r.recordPosition()
	bs, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(bs)), r.readPipe(readPipe)
}

func (r *Reader) ReadDouble(readPipe bool) (float64, error) {
	r.recordPosition()
	bs, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(bs)), r.readPipe(readPipe)
}

func (r *Reader) ReadString(n int, readPipe bool) (string, error) {
	r.recordPosition()
	bs, err := r.take(n)
	if err != nil {
		return "", err
	}
	return string(bs), r.readPipe(readPipe)
}

// ReadBString reads a string prefixed by its 2-byte length. With readPipe set, both the
// length and the string are followed by a delimiter.
func (r *Reader) ReadBString(readPipe bool) (string, error) {
	length, err := r.ReadShort(readPipe)
	if err != nil {
		return "", err
	}
	if length < 0 {
		return "", r.errorf("negative string length %d", length)
	}
	return r.ReadString(int(length), readPipe)
}

// ReadFormIDIndex reads a 3-byte big-endian form id index.
func (r *Reader) ReadFormIDIndex(readPipe bool) (FormIDIndex, error) {
	r.recordPosition()
	bs, err := r.take(3)
	if err != nil {
		return 0, err
	}
	index := uint32(bs[0])<<16 | uint32(bs[1])<<8 | uint32(bs[2])
	return FormIDIndex(index), r.readPipe(readPipe)
}

// ReadNumber reads an unsigned little-endian number of 1, 2 or 4 bytes, without a delimiter.
func (r *Reader) ReadNumber(numBytes int) (uint32, error) {
	r.recordPosition()
	switch numBytes {
	case 1, 2, 4:
	default:
		return 0, r.errorf("number width must be 1, 2, or 4, not %d", numBytes)
	}
	bs, err := r.take(numBytes)
	if err != nil {
		return 0, err
	}
	return littleEndian(bs), nil
}

// ReadUvarint reads the save file's variable width unsigned integer followed by a delimiter.
//
// The bottom 2 bits of the first byte select the width of the whole number:
//
//	0b00 = 1 byte, 0b01 = 2 bytes, 0b10 = 4 bytes
//
// The bytes are little-endian and the value is shifted right by 2 to drop the width bits.
func (r *Reader) ReadUvarint() (uint32, error) {
	r.recordPosition()
	first, err := r.take(1)
	if err != nil {
		return 0, err
	}
	width := 1 << (first[0] & 0b11)
	if width == 8 {
		return 0, r.errorf("varint width is not 1, 2, or 4 for 0x%02X: %d", first[0], width)
	}
	rest, err := r.take(width - 1)
	if err != nil {
		return 0, err
	}
	bs := append([]byte{first[0]}, rest...)
	value := littleEndian(bs) >> 2
	return value, r.readPipe(true)
}

func littleEndian(bs []byte) uint32 {
	value := uint32(0)
	for i, b := range bs {
		value |= uint32(b) << (8 * i)
	}
	return value
}
