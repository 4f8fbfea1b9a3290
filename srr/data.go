package srr

import (
	"github.com/samber/lo"
	"srr-reader/srr/bheader"
	"srr-reader/srr/block"
)

type (
	// File is a decoded SRR container. The mandatory file header block is
	// folded into ApplicationName; Blocks holds what follows it, in order.
	File struct {
		ApplicationName string   `json:"application_name"`
		Blocks          []Record `json:"blocks"`
	}
	Record struct {
		Offset int            `json:"offset"`
		Header bheader.Header `json:"header"`
		Body   block.Body     `json:"body"`
	}
)

func (f File) StoredFiles() []block.StoredFile {
	records := lo.Filter(
		f.Blocks,
		func(record Record, _ int) bool {
			_, ok := record.Body.(*block.StoredFile)
			return ok
		},
	)
	return lo.Map(
		records,
		func(record Record, _ int) block.StoredFile {
			return *record.Body.(*block.StoredFile)
		},
	)
}

func (f File) RarFiles() []block.RarFile {
	records := lo.Filter(
		f.Blocks,
		func(record Record, _ int) bool {
			_, ok := record.Body.(*block.RarFile)
			return ok
		},
	)
	return lo.Map(
		records,
		func(record Record, _ int) block.RarFile {
			return *record.Body.(*block.RarFile)
		},
	)
}
