// Package srr decodes ReScene SRR containers into a File.
package srr

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"srr-reader/srr/serr"
)

type (
	// fileSystem abstracts the two operations needed to load a container.
	fileSystem interface {
		Stat(path string) (fs.FileInfo, error)
		ReadFile(path string) ([]byte, error)
	}
	Decoder struct {
		logger zerolog.Logger
	}
	osFS   struct{}
	wrapFS struct {
		fsys fs.FS
	}
)

func (osFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }
func (osFS) ReadFile(path string) ([]byte, error)  { return os.ReadFile(path) }

func (r wrapFS) Stat(path string) (fs.FileInfo, error) { return fs.Stat(r.fsys, path) }
func (r wrapFS) ReadFile(path string) ([]byte, error)  { return fs.ReadFile(r.fsys, path) }

// NewDecoder returns a Decoder that traces every block at debug level on logger.
func NewDecoder(logger zerolog.Logger) *Decoder {
	return &Decoder{
		logger: logger,
	}
}

// Decode parses a fully loaded container. Any malformed block fails the whole
// call; no partial File is returned.
func (d *Decoder) Decode(bs []byte) (*File, error) {
	file, err := newWalker(bs, d.logger).run()
	if err != nil {
		return nil, errors.Wrap(err, "srr.Decode error")
	}
	return file, nil
}

func (d *Decoder) FromFile(path string) (*File, error) {
	return d.load(osFS{}, path)
}

func (d *Decoder) FromFS(fsys fs.FS, path string) (*File, error) {
	return d.load(wrapFS{fsys: fsys}, path)
}

func (d *Decoder) load(fsys fileSystem, path string) (*File, error) {
	if _, err := fsys.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(serr.ErrFileNotFound, `"%s"`, path)
		}
		return nil, errors.Wrapf(serr.ErrMetadataUnavailable, `"%s": %v`, path, err)
	}
	bs, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(serr.ErrReadFailure, `"%s": %v`, path, err)
	}
	d.logger.Debug().
		Str("path", path).
		Int("size", len(bs)).
		Msg("loaded file")

	file, err := d.Decode(bs)
	if err != nil {
		return nil, errors.Wrapf(err, `"%s"`, path)
	}
	return file, nil
}

func Decode(bs []byte) (*File, error) {
	return NewDecoder(zerolog.Nop()).Decode(bs)
}

func FromFile(path string) (*File, error) {
	return NewDecoder(zerolog.Nop()).FromFile(path)
}
