package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/iancoleman/orderedmap"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"srr-reader/ds"
	"srr-reader/srr"
	"srr-reader/srr/block"
	"srr-reader/ui"
)

type (
	Args struct {
		Inspect     *InspectCmd     `arg:"subcommand:inspect" help:"decode SRR files and print their blocks"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the blocks of one SRR file"`
		Verbose     bool            `arg:"-v,--verbose,env:SRR_VERBOSE" help:"log every block while decoding"`
	}
	InspectCmd struct {
		Files []string `arg:"positional,required" help:"paths to SRR files" placeholder:"FILE"`
		JSON  bool     `arg:"--json" help:"print the decoded files as JSON"`
	}
	InteractiveCmd struct {
		File string `arg:"positional,required" help:"path to an SRR file" placeholder:"FILE"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to read SRR files (ReScene release information)",
			"and list the application, stored files and RAR volumes they describe.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// StartInspecting decodes every path in turn. A file that fails to decode is
// reported and skipped; the number of failures is returned.
func StartInspecting(out io.Writer, logger zerolog.Logger, paths []string, asJSON bool) int {
	decoder := srr.NewDecoder(logger)
	failures := 0
	decoded := make([]*orderedmap.OrderedMap, 0, len(paths))

	for _, path := range paths {
		file, err := decoder.FromFile(path)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("unable to decode file")
			failures++
			continue
		}
		if asJSON {
			lhm := srr.ToOrderedMap(*file)
			lhm.Set("path", path)
			decoded = append(decoded, lhm)
			continue
		}
		fmt.Fprint(out, Summarize(path, *file))
	}

	if asJSON {
		s, err := ds.DumpJSON(decoded)
		if err != nil {
			logger.Error().Err(err).Msg("unable to render JSON")
			return failures + 1
		}
		fmt.Fprintln(out, s)
	}
	return failures
}

// Summarize renders one line for the file followed by one line per block.
func Summarize(path string, file srr.File) string {
	lines := []string{
		fmt.Sprintf(`%s: application "%s", %d blocks`, path, file.ApplicationName, len(file.Blocks)),
	}
	lines = append(
		lines,
		lo.Map(
			file.Blocks,
			func(record srr.Record, _ int) string {
				return "  " + DescribeRecord(record)
			},
		)...,
	)
	return strings.Join(lines, "\n") + "\n"
}

func DescribeRecord(record srr.Record) string {
	switch body := record.Body.(type) {
	case *block.StoredFile:
		return fmt.Sprintf("@%d %v %s (%d bytes)", record.Offset, record.Header.Type, body.Name, body.FileSize)
	case *block.RarFile:
		return fmt.Sprintf("@%d %v %s", record.Offset, record.Header.Type, body.FileName)
	default:
		return fmt.Sprintf("@%d %v", record.Offset, record.Header.Type)
	}
}

func StartInteractive(logger zerolog.Logger, path string) int {
	file, err := srr.NewDecoder(logger).FromFile(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("unable to decode file")
		return 1
	}
	if err := ui.Start(path, *file); err != nil {
		logger.Error().Err(err).Msg("interactive session failed")
		return 1
	}
	return 0
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	logger := NewLogger(args.Verbose)

	failures := 0
	switch {
	case args.Inspect != nil:
		failures = StartInspecting(os.Stdout, logger, args.Inspect.Files, args.Inspect.JSON)
	case args.Interactive != nil:
		failures = StartInteractive(logger, args.Interactive.File)
	default:
		parser.WriteHelp(os.Stderr)
		failures = 1
	}

	if failures > 0 {
		os.Exit(1)
	}
}
