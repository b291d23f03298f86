package ioformat

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
)

// SimSpec is the parsed contents of a specification file: a single CSV
// line of six comma-separated values, debug_level, skip, iterations,
// population_size, crossover_probability, mutation_probability.
type SimSpec struct {
	DebugLevel           int
	Skip                 int
	Iterations           int
	PopulationSize       int
	CrossoverProbability float64
	MutationProbability  float64
}

var specFieldNames = [6]string{
	"debug_level", "skip", "iterations", "population_size",
	"crossover_probability", "mutation_probability",
}

// ParseSpec parses a single spec line into a SimSpec. Returns a
// ConfigError for a wrong field count or any unparseable field.
func ParseSpec(line string) (SimSpec, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 6 {
		return SimSpec{}, ConfigError{
			Message: "expected exactly 6 comma-separated values, got " + strconv.Itoa(len(fields)),
		}
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	ints := make([]int, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return SimSpec{}, ConfigError{
				Field:   specFieldNames[i],
				Message: "cannot parse \"" + fields[i] + "\" as an integer",
			}
		}
		ints[i] = v
	}

	floats := make([]float64, 2)
	for i := 0; i < 2; i++ {
		v, err := strconv.ParseFloat(fields[4+i], 64)
		if err != nil {
			return SimSpec{}, ConfigError{
				Field:   specFieldNames[4+i],
				Message: "cannot parse \"" + fields[4+i] + "\" as a float",
			}
		}
		floats[i] = v
	}

	return SimSpec{
		DebugLevel:           ints[0],
		Skip:                 ints[1],
		Iterations:           ints[2],
		PopulationSize:       ints[3],
		CrossoverProbability: floats[0],
		MutationProbability:  floats[1],
	}, nil
}

// ReadSpecFile reads and parses the spec file at path.
func ReadSpecFile(path string) (SimSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return SimSpec{}, IoError{Path: path, Message: err.Error()}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	record, err := r.Read()
	if err != nil {
		return SimSpec{}, IoError{Path: path, Message: err.Error()}
	}

	return ParseSpec(strings.Join(record, ","))
}
