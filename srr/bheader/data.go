package bheader

import (
	"fmt"
)

type (
	// Header is the 7-byte prefix shared by every block.
	Header struct {
		CRC   uint16    `json:"crc"`
		Type  BlockType `json:"type"`
		Flags uint16    `json:"flags"`
		// Size covers the whole block, header included.
		Size uint16 `json:"size"`
	}
	BlockType byte
)

const (
	DefaultHeaderSize = 7
)

const (
	BlockTypeFileHeader = BlockType(0x69)
	BlockTypeStoredFile = BlockType(0x6A)
	BlockTypeOsoHash    = BlockType(0x6B)
	BlockTypeRarPadding = BlockType(0x6C)
	BlockTypeRarFile    = BlockType(0x71)
)

// ExpectedCRC is the constant an SRR block of type t carries in its CRC field.
// Unknown types report false.
func (t BlockType) ExpectedCRC() (uint16, bool) {
	switch t {
	case BlockTypeFileHeader, BlockTypeStoredFile, BlockTypeOsoHash, BlockTypeRarPadding, BlockTypeRarFile:
		return uint16(t)<<8 | uint16(t), true
	default:
		return 0, false
	}
}

func (t BlockType) String() string {
	switch t {
	case BlockTypeFileHeader:
		return "FileHeader"
	case BlockTypeStoredFile:
		return "StoredFile"
	case BlockTypeOsoHash:
		return "OsoHash"
	case BlockTypeRarPadding:
		return "RarPadding"
	case BlockTypeRarFile:
		return "RarFile"
	default:
		return fmt.Sprintf("Unknown(%#04x)", byte(t))
	}
}

func (h Header) String() string {
	return fmt.Sprintf(
		"Head CRC : %x - Head Type : %v - Head Flags : %x - Head Size : %x",
		h.CRC, h.Type, h.Flags, h.Size,
	)
}
