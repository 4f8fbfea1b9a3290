package lbytes

import (
	"bytes"
)

type (
	// Reader is a little-endian cursor over a fully loaded buffer.
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)
