// Package serr holds the error kinds surfaced while loading and decoding SRR files.
package serr

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrFileNotFound        = errors.New("file not found")
	ErrMetadataUnavailable = errors.New("unable to read file metadata")
	ErrReadFailure         = errors.New("unable to read file")
	// ErrIncoherentFileSize is returned when the whole buffer cannot even hold one block header.
	ErrIncoherentFileSize = errors.New("incoherent file size")
	ErrTruncatedHeader    = errors.New("truncated block header")
	ErrInvalidUTF8        = errors.New("invalid UTF-8 text")
	ErrTruncatedBody      = errors.New("truncated block body")
)

type (
	ErrInvalidChecksum struct {
		Expected uint16
		Actual   uint16
	}
	ErrInvalidFlags struct {
		Expected uint16
		Actual   uint16
	}
	ErrUnexpectedBlockType struct {
		Expected byte
		Actual   byte
	}
	ErrUnreachableCode struct {
		Caller string
	}
)

func (r ErrInvalidChecksum) Error() string {
	return fmt.Sprintf("invalid checksum: expected %#06x, got %#06x", r.Expected, r.Actual)
}

func (r ErrInvalidFlags) Error() string {
	return fmt.Sprintf("invalid flags: expected %#06x, got %#06x", r.Expected, r.Actual)
}

func (r ErrUnexpectedBlockType) Error() string {
	return fmt.Sprintf("unexpected block type: expected %#04x, got %#04x", r.Expected, r.Actual)
}

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code", r.Caller)
}
