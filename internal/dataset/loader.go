package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ownerboard.dev/internal/logging"
)

// Options controls how a dataset file is read.
type Options struct {
	// Delimiter between fields. If 0, it is sniffed from the file name and header line.
	Delimiter rune
	// Logger receives load and cleanup diagnostics. May be nil.
	Logger *slog.Logger
}

// Load reads the dataset at path and returns its canonical (cleaned) table.
func Load(path string, opt Options) (*Table, error) {
	start := time.Now()

	raw, err := ReadRaw(path, opt)
	if err != nil {
		return nil, err
	}
	table := Clean(raw)

	logging.LogOperation(opt.Logger, "dataset_loaded",
		slog.String("source", path),
		slog.Int("records", table.Len()),
		slog.Duration("duration", time.Since(start)))

	return table, nil
}

// ReadRaw reads the dataset at path without cleaning it. Cells absent from short
// rows are missing; every other cell is kept verbatim.
func ReadRaw(path string, opt Options) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("stat dataset: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer logging.SafeCloseWithLogging(f, opt.Logger, "close_dataset")

	return readRaw(f, filepath.Base(path), opt.Delimiter)
}

func readRaw(r io.Reader, name string, delim rune) (*Table, error) {
	br := bufio.NewReader(r)
	if delim == 0 {
		head, _ := br.Peek(4096)
		delim = sniffDelimiter(name, head)
	}

	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Missing: columnLabels(Columns)}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(records)+1, err)
		}

		var rec Record
		for _, c := range Columns {
			if i := index[c]; i < len(row) {
				rec = rec.With(c, Present(row[i]))
			}
		}
		records = append(records, rec)
	}

	return &Table{records: records}, nil
}

// mapHeader finds the position of every expected column. When a label repeats,
// the first occurrence wins.
func mapHeader(header []string) (map[Column]int, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}

	index := make(map[Column]int, len(Columns))
	var missing []Column
	for _, c := range Columns {
		i, ok := positions[normalizeHeader(c.String())]
		if !ok {
			missing = append(missing, c)
			continue
		}
		index[c] = i
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: columnLabels(missing)}
	}
	return index, nil
}

func columnLabels(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.String()
	}
	return out
}

// sniffDelimiter picks tab for .tsv files, otherwise the most frequent of
// ',', ';' and '\t' on the header line. Ties and empty headers fall back to ','.
func sniffDelimiter(name string, head []byte) rune {
	if strings.HasSuffix(strings.ToLower(name), ".tsv") {
		return '\t'
	}
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	best, bestCount := ',', bytes.Count(head, []byte{','})
	for _, d := range []rune{';', '\t'} {
		if n := bytes.Count(head, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
