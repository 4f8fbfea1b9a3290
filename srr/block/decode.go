// Package block decodes the type-specific bodies of SRR blocks.
package block

import (
	"github.com/pkg/errors"
	"srr-reader/srr/bheader"
	"srr-reader/srr/lbytes"
	"srr-reader/srr/serr"
)

// New returns an empty Body for the block types that may follow the file
// header. Any other type has no decoder and reports false.
func New(blockType bheader.BlockType) (Body, bool) {
	switch blockType {
	case bheader.BlockTypeStoredFile:
		return &StoredFile{}, true
	case bheader.BlockTypeRarFile:
		return &RarFile{}, true
	default:
		return nil, false
	}
}

func checkHeader(header bheader.Header, expected bheader.BlockType) error {
	if header.Type != expected {
		return serr.ErrUnexpectedBlockType{
			Expected: byte(expected),
			Actual:   byte(header.Type),
		}
	}
	crc, ok := expected.ExpectedCRC()
	if !ok {
		return serr.ErrUnreachableCode{Caller: "block.checkHeader"}
	}
	if header.CRC != crc {
		return serr.ErrInvalidChecksum{
			Expected: crc,
			Actual:   header.CRC,
		}
	}
	return nil
}

func (r *FileHeader) Type() bheader.BlockType {
	return bheader.BlockTypeFileHeader
}

func (r *FileHeader) TrailingSize() int {
	return 0
}

func (r *FileHeader) DecodeBody(header bheader.Header, reader *lbytes.Reader) error {
	if err := checkHeader(header, r.Type()); err != nil {
		return errors.Wrap(err, "FileHeader.DecodeBody error")
	}
	name, err := reader.ReadPrefixedString()
	if err != nil {
		return errors.Wrap(err, "FileHeader.DecodeBody error: read application name")
	}
	r.ApplicationName = name
	return nil
}

func (r *StoredFile) Type() bheader.BlockType {
	return bheader.BlockTypeStoredFile
}

// TrailingSize is the payload length; the declared block size stops at the name.
func (r *StoredFile) TrailingSize() int {
	return int(r.FileSize)
}

func (r *StoredFile) DecodeBody(header bheader.Header, reader *lbytes.Reader) error {
	if err := checkHeader(header, r.Type()); err != nil {
		return errors.Wrap(err, "StoredFile.DecodeBody error")
	}
	if header.Flags != StoredFileFlags {
		err := serr.ErrInvalidFlags{
			Expected: StoredFileFlags,
			Actual:   header.Flags,
		}
		return errors.Wrap(err, "StoredFile.DecodeBody error")
	}

	fileSize, err := reader.ReadUint32()
	if err != nil {
		return errors.Wrap(err, "StoredFile.DecodeBody error: read file size")
	}
	name, err := reader.ReadPrefixedString()
	if err != nil {
		return errors.Wrap(err, "StoredFile.DecodeBody error: read name")
	}

	dataOffset := reader.Offset()
	if err := reader.Skip(int(fileSize)); err != nil {
		return errors.Wrapf(err, `StoredFile.DecodeBody error: payload of "%s"`, name)
	}

	r.FileSize = fileSize
	r.Name = name
	r.DataOffset = dataOffset
	r.DataEnd = dataOffset + int(fileSize)
	return nil
}

func (r *RarFile) Type() bheader.BlockType {
	return bheader.BlockTypeRarFile
}

func (r *RarFile) TrailingSize() int {
	return 0
}

func (r *RarFile) DecodeBody(header bheader.Header, reader *lbytes.Reader) error {
	if err := checkHeader(header, r.Type()); err != nil {
		return errors.Wrap(err, "RarFile.DecodeBody error")
	}
	fileName, err := reader.ReadPrefixedString()
	if err != nil {
		return errors.Wrap(err, "RarFile.DecodeBody error: read file name")
	}
	r.FileName = fileName
	return nil
}
