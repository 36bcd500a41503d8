package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/IoTIVP/data-veil/domain/sensor"
	"github.com/IoTIVP/data-veil/ports"
)

// Writer persists channel tables to Excel or CSV files in the same layout
// the Reader consumes: header row of channel names, one sample per row.
type Writer struct{}

// NewWriter creates a new sample writer handling both xlsx and csv files
func NewWriter() ports.SampleWriter {
	return &Writer{}
}

// Write stores the channels at path, choosing the format by extension.
func (w *Writer) Write(path string, ch sensor.Channels) error {
	names, n, err := columnLayout(ch)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeCSV(path, ch, names, n)
	default:
		return writeXLSX(path, ch, names, n)
	}
}

// columnLayout fixes the column order, time channel first, and enforces the
// equal-length invariant before anything touches the disk.
func columnLayout(ch sensor.Channels) ([]string, int, error) {
	if len(ch) == 0 {
		return nil, 0, fmt.Errorf("no channels to write")
	}

	names := make([]string, 0, len(ch))
	for name := range ch {
		if name != sensor.ChanTime {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := ch[sensor.ChanTime]; ok {
		names = append([]string{sensor.ChanTime}, names...)
	}

	n := len(ch[names[0]])
	for _, name := range names {
		if len(ch[name]) != n {
			return nil, 0, fmt.Errorf("channel %q has %d samples, want %d", name, len(ch[name]), n)
		}
	}
	return names, n, nil
}

func writeXLSX(path string, ch sensor.Channels, names []string, n int) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(names))
	for j, name := range names {
		header[j] = name
	}
	cell, _ := excelize.CoordinatesToCellName(1, 1)
	if err := f.SetSheetRow("Sheet1", cell, &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	row := make([]interface{}, len(names))
	for i := 0; i < n; i++ {
		for j, name := range names {
			row[j] = ch[name][i]
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

func writeCSV(path string, ch sensor.Channels, names []string, n int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(names); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	record := make([]string, len(names))
	for i := 0; i < n; i++ {
		for j, name := range names {
			record[j] = strconv.FormatFloat(ch[name][i], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}
