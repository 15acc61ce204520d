package statement

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat means the file extension is not a statement format
// we know how to read.
var ErrUnsupportedFormat = errors.New("unsupported statement format")

// readSheet loads the first worksheet of an uploaded statement into rows of
// trimmed-on-demand string cells. Dispatch is by extension: banks name their
// exports truthfully far more reliably than they structure them.
func readSheet(data []byte, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(data)
	case ".xls":
		rows, err := readLegacyXLS(data)
		if err == nil {
			return rows, nil
		}
		// Renamed .xlsx files show up with an .xls extension often enough
		// that the modern reader gets a second try.
		return readXLSX(data)
	case ".xlsx":
		return readXLSX(data)
	}

	return nil, ErrUnsupportedFormat
}

func readCSV(data []byte) ([][]string, error) {
	utf8r, err := newUTF8Reader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1 // statement exports pad rows unevenly
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	return rows, nil
}

func readLegacyXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open legacy workbook: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("legacy workbook has no sheets")
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}

		cells := make([]string, 0, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}

		rows = append(rows, cells)
	}

	return rows, nil
}

// readAll buffers the upload so each reader can seek from the start.
func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	return data, nil
}
