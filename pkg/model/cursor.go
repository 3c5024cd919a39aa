package model

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Cursor decodes little-endian fixed-width fields from a byte stream and
// tracks the absolute offset of the next byte
type Cursor struct {
	r      io.Reader
	offset int64
	buf    [4]byte
}

// NewCursor returns a Cursor reading from r. offset is the stream position
// of r's first byte and is only used in error reports
func NewCursor(r io.Reader, offset int64) *Cursor {
	return &Cursor{r: r, offset: offset}
}

// Offset returns the stream position of the next unread byte
func (c *Cursor) Offset() int64 {
	return c.offset
}

// Uint32 reads a little-endian 32-bit unsigned integer
func (c *Cursor) Uint32(field string) (uint32, error) {
	b, err := c.read(field, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Int32 reads a little-endian 32-bit signed integer
func (c *Cursor) Int32(field string) (int32, error) {
	u, err := c.Uint32(field)
	return int32(u), err
}

// Float32 reads a little-endian IEEE-754 single precision value
func (c *Cursor) Float32(field string) (float32, error) {
	u, err := c.Uint32(field)
	return math.Float32frombits(u), err
}

// Uint16 reads a little-endian 16-bit unsigned integer
func (c *Cursor) Uint16(field string) (uint16, error) {
	b, err := c.read(field, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Skip discards n bytes
func (c *Cursor) Skip(field string, n int64) error {
	got, err := io.CopyN(io.Discard, c.r, n)
	start := c.offset
	c.offset += got
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return &TruncatedInputError{Field: field, Offset: start, Need: n, Have: got}
	}
	return fmt.Errorf("reading %s at offset %d: %w", field, start, err)
}

func (c *Cursor) read(field string, n int) ([]byte, error) {
	b := c.buf[:n]
	got, err := io.ReadFull(c.r, b)
	start := c.offset
	c.offset += int64(got)
	if err == nil {
		return b, nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, &TruncatedInputError{Field: field, Offset: start, Need: int64(n), Have: int64(got)}
	}
	return nil, fmt.Errorf("reading %s at offset %d: %w", field, start, err)
}
