package clusters

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// CsvImporter reads a point set from the numeric columns of a CSV file.
// Rows in which any selected column does not parse as a number, such as a
// header, are skipped.
type CsvImporter struct {
	Logger zerolog.Logger
}

func NewCsvImporter() *CsvImporter {
	return &CsvImporter{
		Logger: zerolog.Nop(),
	}
}

// Import reads columns start through end, inclusive, of file.
func (i *CsvImporter) Import(file string, start, end int) ([][]float64, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", file)
	}

	defer f.Close()

	return i.ImportReader(f, start, end)
}

func (i *CsvImporter) ImportReader(in io.Reader, start, end int) ([][]float64, error) {
	if start < 0 || end < 0 || start > end {
		return nil, errors.Wrapf(ErrInvalidRange, "columns %d..%d", start, end)
	}

	var (
		d       = make([][]float64, 0, 64)
		r       = csv.NewReader(bufio.NewReader(in))
		s       = end - start + 1
		row     int
		skipped int
		g       []float64
	)

	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

Main:
	for {
		record, err := r.Read()

		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "read csv")
		}

		row++

		if len(record) <= end {
			return nil, errors.Wrapf(ErrInvalidRange, "row %d has %d columns, need %d", row, len(record), end+1)
		}

		g = make([]float64, 0, s)

		for j := start; j <= end; j++ {
			f, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				skipped++
				i.Logger.Debug().Int("row", row).Int("column", j).Msg("skipping non-numeric row")
				continue Main
			}

			g = append(g, f)
		}

		d = append(d, g)
	}

	i.Logger.Debug().Int("points", len(d)).Int("skipped", skipped).Msg("imported csv")

	if len(d) == 0 {
		return nil, ErrEmptySet
	}

	return d, nil
}
