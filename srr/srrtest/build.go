// Package srrtest builds synthetic SRR containers for tests.
package srrtest

import (
	"srr-reader/srr/bheader"
	"srr-reader/srr/lbytes"
)

const storedFileFlags = 0x8000

// Block assembles a header and body, filling in Size when it is left at zero.
func Block(header bheader.Header, body []byte) []byte {
	if header.Size == 0 {
		header.Size = uint16(bheader.DefaultHeaderSize + len(body))
	}
	bs := bheader.Encode(header)
	bs = append(bs, body...)
	return bs
}

func FileHeader(applicationName string) []byte {
	return Block(
		bheader.Header{
			CRC:  0x6969,
			Type: bheader.BlockTypeFileHeader,
		},
		lbytes.EncodePrefixedString(applicationName),
	)
}

// StoredFile lays out a stored file block; the payload is appended after the
// declared block size, as SRR files do.
func StoredFile(name string, payload []byte) []byte {
	body := lbytes.EncodeUint32(uint32(len(payload)))
	body = append(body, lbytes.EncodePrefixedString(name)...)
	bs := Block(
		bheader.Header{
			CRC:   0x6A6A,
			Type:  bheader.BlockTypeStoredFile,
			Flags: storedFileFlags,
		},
		body,
	)
	bs = append(bs, payload...)
	return bs
}

func RarFile(fileName string) []byte {
	return Block(
		bheader.Header{
			CRC:  0x7171,
			Type: bheader.BlockTypeRarFile,
		},
		lbytes.EncodePrefixedString(fileName),
	)
}

// Concat joins blocks into one container buffer.
func Concat(blocks ...[]byte) []byte {
	bs := make([]byte, 0)
	for _, b := range blocks {
		bs = append(bs, b...)
	}
	return bs
}
