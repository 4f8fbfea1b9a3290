package srr

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"srr-reader/srr/bheader"
	"srr-reader/srr/block"
	"srr-reader/srr/lbytes"
	"srr-reader/srr/serr"
)

type walkerState int

const (
	walkerStateStart walkerState = iota
	walkerStateReadingFileHeader
	walkerStateReadingBlocks
	walkerStateDone
	walkerStateFailed
)

// walker drives a single pass over an in-memory container.
type walker struct {
	reader *lbytes.Reader
	total  int
	cursor int
	state  walkerState
	file   File
	logger zerolog.Logger
}

func newWalker(bs []byte, logger zerolog.Logger) *walker {
	return &walker{
		reader: lbytes.NewBytesReader(bs),
		total:  len(bs),
		state:  walkerStateStart,
		file: File{
			Blocks: make([]Record, 0),
		},
		logger: logger,
	}
}

func (w *walker) run() (*File, error) {
	for {
		err := error(nil)
		switch w.state {
		case walkerStateStart:
			err = w.start()
		case walkerStateReadingFileHeader:
			err = w.readFileHeader()
		case walkerStateReadingBlocks:
			err = w.readBlock()
		case walkerStateDone:
			return &w.file, nil
		default:
			err = serr.ErrUnreachableCode{Caller: "srr.walker.run"}
		}
		if err != nil {
			w.state = walkerStateFailed
			return nil, err
		}
	}
}

func (w *walker) start() error {
	if w.total < bheader.DefaultHeaderSize {
		return errors.Wrapf(serr.ErrIncoherentFileSize, "%d bytes", w.total)
	}
	w.cursor = 0
	w.state = walkerStateReadingFileHeader
	return nil
}

func (w *walker) readFileHeader() error {
	header, err := w.readHeader()
	if err != nil {
		return err
	}
	if header.Type != bheader.BlockTypeFileHeader {
		err := serr.ErrUnexpectedBlockType{
			Expected: byte(bheader.BlockTypeFileHeader),
			Actual:   byte(header.Type),
		}
		return errors.Wrap(err, "srr.walker error: first block")
	}
	if err := w.checkSize(*header); err != nil {
		return err
	}
	fileHeader := block.FileHeader{}
	if err := fileHeader.DecodeBody(*header, w.reader); err != nil {
		return errors.Wrap(err, "srr.walker error: first block")
	}
	w.logger.Debug().
		Str("application_name", fileHeader.ApplicationName).
		Msg("file header")

	w.file.ApplicationName = fileHeader.ApplicationName
	w.cursor += int(header.Size)
	w.state = walkerStateReadingBlocks
	return nil
}

func (w *walker) readBlock() error {
	if w.cursor >= w.total-bheader.DefaultHeaderSize {
		w.state = walkerStateDone
		return nil
	}

	header, err := w.readHeader()
	if err != nil {
		return err
	}
	body, ok := block.New(header.Type)
	if !ok {
		// blocks without a decoder end the walk; nothing after them is read
		w.logger.Debug().
			Int("offset", w.cursor).
			Stringer("type", header.Type).
			Msg("stopping at block without decoder")
		w.state = walkerStateDone
		return nil
	}
	if err := w.checkSize(*header); err != nil {
		return err
	}
	if err := body.DecodeBody(*header, w.reader); err != nil {
		return errors.Wrapf(err, "srr.walker error: block at offset %d", w.cursor)
	}
	w.logger.Debug().
		Int("offset", w.cursor).
		Interface("body", body).
		Msg("block decoded")

	w.file.Blocks = append(
		w.file.Blocks,
		Record{
			Offset: w.cursor,
			Header: *header,
			Body:   body,
		},
	)
	w.cursor += int(header.Size) + body.TrailingSize()
	return nil
}

// readHeader decodes the block header at the cursor, leaving the reader at
// the start of the body.
func (w *walker) readHeader() (*bheader.Header, error) {
	if err := w.reader.SeekTo(w.cursor); err != nil {
		return nil, errors.Wrap(err, "srr.walker error")
	}
	header, err := bheader.Decode(w.reader)
	if err != nil {
		return nil, errors.Wrap(err, "srr.walker error")
	}
	w.logger.Debug().
		Int("offset", w.cursor).
		Stringer("header", header).
		Msg("block header")
	return header, nil
}

// checkSize rejects a declared size that would not move the cursor past the header.
func (w *walker) checkSize(header bheader.Header) error {
	if header.Size < bheader.DefaultHeaderSize {
		return errors.Wrapf(
			serr.ErrTruncatedHeader,
			"srr.walker error: block at offset %d declares size %d",
			w.cursor, header.Size,
		)
	}
	return nil
}
