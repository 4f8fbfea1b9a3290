package bheader

import (
	"srr-reader/srr/lbytes"
)

func Encode(header Header) []byte {
	bs := make([]byte, 0, DefaultHeaderSize)
	bs = append(bs, lbytes.EncodeUint16(header.CRC)...)
	bs = append(bs, byte(header.Type))
	bs = append(bs, lbytes.EncodeUint16(header.Flags)...)
	bs = append(bs, lbytes.EncodeUint16(header.Size)...)
	return bs
}
