package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/drakos74/free-cluster/internal/model"
)

// Parse reads the dataset from the given file.
func Parse(path string) (model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("could not open file '%s': %w", path, err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("could not parse file '%s': %w", path, err)
	}

	log.Info().
		Str("file", path).
		Int("samples", ds.Size()).
		Int("features", len(ds.Names())).
		Msg("loaded dataset")
	return ds, nil
}

// Read reads a comma separated dataset.
// The first row is the header, the first column holds the label and the rest the numeric features.
func Read(r io.Reader) (model.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// row lengths are checked against the header below, with a better error message
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return model.Dataset{}, fmt.Errorf("empty dataset")
	}
	if err != nil {
		return model.Dataset{}, fmt.Errorf("could not read header: %w", err)
	}
	if len(header) < 2 {
		return model.Dataset{}, fmt.Errorf("header needs a label and at least one feature: %v", header)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	ds := model.Dataset{
		Header:  header,
		Samples: make([]model.Sample, 0),
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return model.Dataset{}, fmt.Errorf("could not read record: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if len(record) != len(header) {
			return model.Dataset{}, fmt.Errorf("line %d: %d fields instead of %d", line, len(record), len(header))
		}
		features := make([]float64, len(record)-1)
		for i, field := range record[1:] {
			f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return model.Dataset{}, fmt.Errorf("line %d: could not parse feature '%s': %w", line, header[i+1], err)
			}
			features[i] = f
		}
		ds.Samples = append(ds.Samples, model.Sample{
			Label:    model.Label(strings.TrimSpace(record[0])),
			Features: features,
		})
	}

	return ds, ds.Validate()
}
