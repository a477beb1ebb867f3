package main

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/arloliu/decimate/series"
)

// readFrame parses a CSV document with a header row into a Frame. The first column is x
// and must be numeric; any other column whose cells are all true/false becomes a bool column.
func readFrame(r io.Reader) (*series.Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "cannot read csv")
	}
	if len(records) == 0 {
		return nil, errors.New("csv input is empty")
	}

	header, rows := records[0], records[1:]
	if len(header) < 2 {
		return nil, errors.Errorf("csv needs at least an x and a y column, got %d", len(header))
	}

	columns := make([]series.Column, 0, len(header))
	for c, name := range header {
		name = strings.TrimSpace(name)
		if c > 0 && isBoolColumn(rows, c) {
			values := make([]bool, len(rows))
			for i, row := range rows {
				values[i], _ = strconv.ParseBool(row[c])
			}
			columns = append(columns, series.BoolColumn(name, values))

			continue
		}

		values := make([]float64, len(rows))
		for i, row := range rows {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[c]), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %q", i+2, name)
			}
			values[i] = v
		}
		columns = append(columns, series.Float64Column(name, values))
	}

	return series.NewFrame(columns...)
}

func isBoolColumn(rows [][]string, c int) bool {
	if len(rows) == 0 {
		return false
	}
	for _, row := range rows {
		switch strings.ToLower(strings.TrimSpace(row[c])) {
		case "true", "false":
		default:
			return false
		}
	}

	return true
}

// writeFrame writes every dimension of t as CSV with a header row.
func writeFrame(w io.Writer, t series.Table) error {
	columns := make([]series.Column, t.NumDimensions())
	header := make([]string, len(columns))
	for i := range columns {
		col, err := t.Dimension(i)
		if err != nil {
			return err
		}
		columns[i] = col
		header[i] = col.Name()
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "cannot write csv header")
	}

	record := make([]string, len(columns))
	for row := range t.Len() {
		for i, col := range columns {
			if col.IsBool() {
				record[i] = strconv.FormatBool(col.Bools()[row])
			} else {
				record[i] = strconv.FormatFloat(col.Float64At(row), 'g', -1, 64)
			}
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "cannot write csv row %d", row)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "cannot flush csv")
}
