package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"birthday_notification_bot/internal/domain/birthday"

	"github.com/spf13/cobra"
)

// csvRecord is one parsed line of an import file. Err is set when the line is unusable.
type csvRecord struct {
	Line     int
	Birthday *birthday.Birthday
	Err      error
}

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import birthdays from a CSV file (external_id,name,month,day)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		records, err := readBirthdayCSV(f)
		if err != nil {
			return err
		}

		imported, skipped := 0, 0
		for _, rec := range records {
			if rec.Err == nil {
				rec.Err = adminService.ImportBirthday(cmd.Context(), rec.Birthday)
			}
			if rec.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %v\n", rec.Line, rec.Err)
				skipped++
				continue
			}
			imported++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d birthdays, skipped %d.\n", imported, skipped)
		return nil
	},
}

var csvHeader = []string{"external_id", "name", "month", "day"}

// readBirthdayCSV parses external_id,name,month,day rows. A first row naming exactly
// those columns is treated as a header.
func readBirthdayCSV(r io.Reader) ([]csvRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []csvRecord
	for line := 1; ; line++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				records = append(records, csvRecord{Line: line, Err: err})
				continue
			}
			return nil, err
		}
		if line == 1 && isHeader(fields) {
			continue
		}
		records = append(records, parseCSVFields(line, fields))
	}
}

func isHeader(fields []string) bool {
	if len(fields) != len(csvHeader) {
		return false
	}
	for i, name := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(fields[i]), name) {
			return false
		}
	}
	return true
}

func parseCSVFields(line int, fields []string) csvRecord {
	rec := csvRecord{Line: line}
	if len(fields) != 4 {
		rec.Err = fmt.Errorf("expected 4 columns, got %d", len(fields))
		return rec
	}
	month, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		rec.Err = fmt.Errorf("month %q is not a number", fields[2])
		return rec
	}
	day, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		rec.Err = fmt.Errorf("day %q is not a number", fields[3])
		return rec
	}
	rec.Birthday = &birthday.Birthday{
		ExternalID:  strings.TrimSpace(fields[0]),
		DisplayName: strings.TrimSpace(fields[1]),
		Month:       month,
		Day:         day,
	}
	return rec
}
