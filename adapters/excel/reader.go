package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/IoTIVP/data-veil/domain/sensor"
	"github.com/IoTIVP/data-veil/ports"
)

// Reader loads sensor-log channel tables from Excel or CSV files. The first
// row carries channel names; every following row is one sample per channel.
type Reader struct{}

// NewReader creates a new sample reader handling both xlsx and csv files
func NewReader() ports.SampleReader {
	return &Reader{}
}

// Read loads the file into the interchange channel form.
func (r *Reader) Read(path string) (sensor.Channels, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("sensor log not found: %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	default:
		return readXLSX(path)
	}
}

func readXLSX(path string) (sensor.Channels, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	return parseRows(rows)
}

func readCSV(path string) (sensor.Channels, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return parseRows(rows)
}

// parseRows turns a row-major table into equal-length channels. A header-only
// table is valid and yields zero-length channels; ragged rows and blank cells
// violate the equal-length invariant and are rejected.
func parseRows(rows [][]string) (sensor.Channels, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("sensor log has no header row")
	}

	names := make([]string, len(rows[0]))
	channels := make(sensor.Channels, len(names))
	for j, raw := range rows[0] {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, fmt.Errorf("blank channel name in header column %d", j+1)
		}
		if _, dup := channels[name]; dup {
			return nil, fmt.Errorf("duplicate channel %q in header", name)
		}
		names[j] = name
		channels[name] = make([]float64, 0, len(rows)-1)
	}

	for i, row := range rows[1:] {
		if len(row) != len(names) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i+2, len(row), len(names))
		}
		for j, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, channel %q: bad value %q", i+2, names[j], cell)
			}
			channels[names[j]] = append(channels[names[j]], v)
		}
	}
	return channels, nil
}
