// Package bheader decodes the fixed prefix that starts every SRR block.
package bheader

import (
	"github.com/pkg/errors"
	"srr-reader/srr/lbytes"
	"srr-reader/srr/serr"
)

// Decode reads a Header at the reader's position. Only the length is checked
// here; which checksum and flags are legal depends on the block type and is
// left to the body decoders.
func Decode(reader *lbytes.Reader) (*Header, error) {
	if reader.Len() < DefaultHeaderSize {
		return nil, errors.Wrapf(
			serr.ErrTruncatedHeader,
			"bheader.Decode error: %d bytes left at offset %d",
			reader.Len(), reader.Offset(),
		)
	}

	readUint16 := lbytes.CreateUint16ReadFunction(reader)
	readByte := lbytes.CreateByteReadFunction(reader)

	headerInstructions := []lbytes.Instruction{
		{Key: "crc", ReadFunction: readUint16},
		{Key: "type", ReadFunction: readByte},
		{Key: "flags", ReadFunction: readUint16},
		{Key: "size", ReadFunction: readUint16},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "bheader.Decode error")
	}

	return header, nil
}
