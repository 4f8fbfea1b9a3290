package block

import (
	"srr-reader/srr/bheader"
	"srr-reader/srr/lbytes"
)

type (
	// Body is implemented by every block type that has a decoder. A Body is
	// decoded in place from the bytes that follow its header.
	Body interface {
		Type() bheader.BlockType
		DecodeBody(header bheader.Header, reader *lbytes.Reader) error
		// TrailingSize is the number of bytes the block occupies past the size
		// declared in its header.
		TrailingSize() int
	}
	FileHeader struct {
		ApplicationName string `json:"application_name"`
	}
	StoredFile struct {
		FileSize uint32 `json:"file_size"`
		Name     string `json:"name"`
		// DataOffset and DataEnd bound the inline payload within the container.
		DataOffset int `json:"data_offset"`
		DataEnd    int `json:"data_end"`
	}
	RarFile struct {
		FileName string `json:"file_name"`
	}
)

const (
	// StoredFileFlags marks a stored file block whose payload follows inline.
	StoredFileFlags = uint16(0x8000)
)
