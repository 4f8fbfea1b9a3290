package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"srr-reader/srr/serr"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// Offset is the absolute position of the next byte to be read.
func (b *Reader) Offset() int {
	return int(b.Size()) - b.Len()
}

func (b *Reader) SeekTo(offset int) error {
	if offset < 0 || offset > int(b.Size()) {
		return errors.Wrapf(
			serr.ErrTruncatedBody,
			"seek to offset %d outside buffer of %d bytes",
			offset, b.Size(),
		)
	}
	_, err := b.Seek(int64(offset), io.SeekStart)
	return err
}

// Skip moves past n bytes, failing when fewer than n remain.
func (b *Reader) Skip(n int) error {
	if err := b.require(n); err != nil {
		return err
	}
	_, err := b.Seek(int64(n), io.SeekCurrent)
	return err
}

func (b *Reader) ReadUint16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// an empty read at the end of the buffer is not an error
	if n == 0 {
		return bs, nil
	}
	if err := b.require(n); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(b, bs); err != nil {
		return nil, errors.Wrap(err, "ReadBytes error")
	}
	return bs, nil
}

// ReadString reads n bytes and requires them to be valid UTF-8.
func (b *Reader) ReadString(n int) (string, error) {
	bs, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bs) {
		return "", errors.Wrapf(serr.ErrInvalidUTF8, "%d bytes ending at offset %d", n, b.Offset())
	}
	return string(bs), nil
}

// ReadPrefixedString reads a 16-bit length followed by that many bytes of text.
func (b *Reader) ReadPrefixedString() (string, error) {
	n, err := b.ReadUint16()
	if err != nil {
		return "", errors.Wrap(err, "ReadPrefixedString error reading length")
	}
	s, err := b.ReadString(int(n))
	if err != nil {
		return "", errors.Wrap(err, "ReadPrefixedString error reading text")
	}
	return s, nil
}

func (b *Reader) require(n int) error {
	if n > b.Len() {
		return errors.Wrapf(
			serr.ErrTruncatedBody,
			"need %d bytes at offset %d, %d left",
			n, b.Offset(), b.Len(),
		)
	}
	return nil
}
