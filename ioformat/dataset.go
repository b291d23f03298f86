package ioformat

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/lteder/symboreg/evolution"
)

// ReadDataset reads the dataset file at path: one point per line, each
// line at least two comma-separated floats. The first two fields of each
// line are used as x, y; whitespace around numbers is trimmed.
func ReadDataset(path string) ([]evolution.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, IoError{Path: path, Message: err.Error()}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, IoError{Path: path, Message: err.Error()}
	}

	points := make([]evolution.Point, 0, len(records))
	for i, record := range records {
		if len(record) < 2 {
			return nil, ConfigError{
				Message: "line " + strconv.Itoa(i+1) + " has fewer than two fields",
			}
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return nil, ConfigError{
				Field:   "x",
				Message: "line " + strconv.Itoa(i+1) + ": cannot parse \"" + record[0] + "\" as a float",
			}
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, ConfigError{
				Field:   "y",
				Message: "line " + strconv.Itoa(i+1) + ": cannot parse \"" + record[1] + "\" as a float",
			}
		}
		points = append(points, evolution.Point{X: x, Y: y})
	}

	return points, nil
}
