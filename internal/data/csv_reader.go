package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// CSVReader loads a prepared observation file: one header row naming the
// columns, then one numeric row per (state, week) observation. The file is
// expected to be sorted ascending by as_of_date.
type CSVReader struct {
	filename string
}

func NewCSVReader(filename string) *CSVReader {
	return &CSVReader{filename: filename}
}

func (cr *CSVReader) LoadFrame() (*Frame, error) {
	file, err := os.Open(cr.filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("insufficient data in %s", cr.filename)
	}

	headers := records[0]
	rows := make([][]float64, len(records)-1)

	for i, record := range records[1:] {
		rows[i] = make([]float64, len(record))
		for j, cell := range record {
			val, err := decimal.NewFromString(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", i+1, headers[j], err)
			}
			rows[i][j] = val.InexactFloat64()
		}
	}

	return NewFrame(headers, rows)
}
