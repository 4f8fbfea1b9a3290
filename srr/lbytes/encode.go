package lbytes

import (
	"encoding/binary"
)

func EncodeUint16(value uint16) []byte {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, value)
	return bs
}

func EncodeUint32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

// EncodePrefixedString lays out s the way ReadPrefixedString expects it.
func EncodePrefixedString(s string) []byte {
	bs := EncodeUint16(uint16(len(s)))
	bs = append(bs, []byte(s)...)
	return bs
}
