package larreco

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// Column names of the events file.
const (
	VertexXColumn = "true_vertex_x"
	VertexYColumn = "true_vertex_y"
	VertexZColumn = "true_vertex_z"
	HitsColumn    = "hits(x wire energy)"
)

// Hit is a single detector measurement projected onto a wire plane.
type Hit struct {
	X      float64
	Wire   float64
	Energy float64
}

// Vertex is the true interaction point.
type Vertex struct {
	X, Y, Z float64
}

// Event is one record of the events file.
type Event struct {
	ID         int
	TrueVertex Vertex
	Hits       []Hit
}

// ParseHits decodes a whitespace separated list of (x, wire, energy)
// triplets.
func ParseHits(field string) ([]Hit, error) {
	values := strings.Fields(field)
	if len(values)%3 != 0 {
		return nil, fmt.Errorf("%d values is not a multiple of 3", len(values))
	}

	hits := make([]Hit, 0, len(values)/3)
	for i := 0; i < len(values); i += 3 {
		var triplet [3]float64
		for j := range triplet {
			v, err := parseCoordinate(values[i+j])
			if err != nil {
				return nil, err
			}
			triplet[j] = v
		}
		hits = append(hits, Hit{X: triplet[0], Wire: triplet[1], Energy: triplet[2]})
	}
	return hits, nil
}

// parseCoordinate parses a finite real number; nan and inf are rejected.
func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

// ReadEvents reads every record of a comma delimited events file. Event IDs
// are assigned in record order starting from zero.
func ReadEvents(r io.Reader) ([]Event, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{VertexXColumn, VertexYColumn, VertexZColumn, HitsColumn} {
		if _, ok := columns[name]; !ok {
			return nil, &ParseError{Record: -1, Column: name, Err: fmt.Errorf("missing column")}
		}
	}

	var events []Event
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read record %d: %w", len(events), err)
		}

		event := Event{ID: len(events)}
		coords := []*float64{&event.TrueVertex.X, &event.TrueVertex.Y, &event.TrueVertex.Z}
		for i, name := range []string{VertexXColumn, VertexYColumn, VertexZColumn} {
			v, err := parseCoordinate(strings.TrimSpace(record[columns[name]]))
			if err != nil {
				return nil, &ParseError{Record: event.ID, Column: name, Err: err}
			}
			*coords[i] = v
		}

		event.Hits, err = ParseHits(record[columns[HitsColumn]])
		if err != nil {
			return nil, &ParseError{Record: event.ID, Column: HitsColumn, Err: err}
		}

		events = append(events, event)
	}
	return events, nil
}

// InteractionType derives the interaction label from an events file path:
// the base name without its extension.
func InteractionType(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
