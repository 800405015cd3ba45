package assets

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kailas-cloud/symptomlog/internal/domain/symptom"
)

// ReadSymptomVectors decodes a JSON object of symptom id -> vector.
func ReadSymptomVectors(r io.Reader) (*symptom.Vectors, error) {
	var raw map[string][]float32
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("read symptom vectors: %w", err)
	}
	v, err := symptom.NewVectors(raw)
	if err != nil {
		return nil, fmt.Errorf("read symptom vectors: %w", err)
	}
	return v, nil
}

// ReadCatalog reads a CSV with a header row. The id is the first column; the
// name comes from a column called "name" or "symptom", else the second column.
func ReadCatalog(r io.Reader) (*symptom.Catalog, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("read catalog: missing header")
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, errors.New("read catalog: need at least two columns")
	}
	nameCol := 1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "symptom":
			if i > 0 {
				nameCol = i
			}
		}
	}

	names := make(map[string]string, len(rows)-1)
	for i, row := range rows[1:] {
		if nameCol >= len(row) {
			return nil, fmt.Errorf("read catalog: row %d: missing name column", i+2)
		}
		id, name := strings.TrimSpace(row[0]), strings.TrimSpace(row[nameCol])
		if id == "" {
			continue
		}
		names[id] = name
	}
	c, err := symptom.NewCatalog(names)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return c, nil
}

// ReadRelations reads a correlation matrix CSV: the header lists target ids
// after a leading corner cell, each row starts with a source id. Empty cells
// are skipped.
func ReadRelations(r io.Reader) (*symptom.Relations, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("read relations: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("read relations: missing header")
	}

	targets := rows[0]
	corr := make(map[string]map[string]float64, len(rows)-1)
	for i, row := range rows[1:] {
		src := strings.TrimSpace(row[0])
		if src == "" {
			continue
		}
		out := make(map[string]float64, len(row)-1)
		for j := 1; j < len(row) && j < len(targets); j++ {
			cell := strings.TrimSpace(row[j])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("read relations: row %d col %d: %w", i+2, j+1, err)
			}
			out[strings.TrimSpace(targets[j])] = v
		}
		corr[src] = out
	}
	rel, err := symptom.NewRelations(corr)
	if err != nil {
		return nil, fmt.Errorf("read relations: %w", err)
	}
	return rel, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}
