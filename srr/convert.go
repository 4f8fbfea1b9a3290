package srr

import (
	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"
	"srr-reader/srr/block"
)

// ToOrderedMap lays out a File for JSON output with a stable key order.
func ToOrderedMap(file File) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("application_name", file.ApplicationName)
	lhm.Set(
		"blocks",
		lo.Map(
			file.Blocks,
			func(record Record, _ int) *orderedmap.OrderedMap {
				return recordToOrderedMap(record)
			},
		),
	)
	return lhm
}

func recordToOrderedMap(record Record) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("offset", record.Offset)
	lhm.Set("type", record.Header.Type.String())
	lhm.Set("crc", record.Header.CRC)
	lhm.Set("flags", record.Header.Flags)
	lhm.Set("size", record.Header.Size)

	switch body := record.Body.(type) {
	case *block.StoredFile:
		lhm.Set("name", body.Name)
		lhm.Set("file_size", body.FileSize)
		lhm.Set("data_offset", body.DataOffset)
		lhm.Set("data_end", body.DataEnd)
	case *block.RarFile:
		lhm.Set("file_name", body.FileName)
	}
	return lhm
}
