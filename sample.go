package larreco

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

const InteractionTypeColumn = "interaction_type"

// Table holds the header and data rows of a CSV file.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable reads a comma delimited file with a header row.
func ReadTable(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header")
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}

func (t *Table) column(name string) (int, error) {
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return -1, &ParseError{Record: -1, Column: name, Err: fmt.Errorf("missing column")}
}

// ValueCount is the number of rows sharing one value of a column.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts counts the distinct values of column, most frequent first.
// Ties are ordered by value.
func (t *Table) ValueCounts(column string) ([]ValueCount, error) {
	col, err := t.column(column)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, row := range t.Rows {
		counts[row[col]]++
	}

	result := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		result = append(result, ValueCount{Value: value, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})
	return result, nil
}

// Select returns the rows whose interaction_type is interaction. When n is
// positive, n of those rows are drawn without replacement using src, keeping
// their input order. A nil src uses the global source.
func (t *Table) Select(interaction string, n int, src rand.Source) (*Table, error) {
	col, err := t.column(InteractionTypeColumn)
	if err != nil {
		return nil, err
	}

	selected := &Table{Header: t.Header}
	for _, row := range t.Rows {
		if row[col] == interaction {
			selected.Rows = append(selected.Rows, row)
		}
	}
	if n <= 0 {
		return selected, nil
	}
	if n > len(selected.Rows) {
		return nil, fmt.Errorf("cannot sample %d rows of %s: only %d available", n, interaction, len(selected.Rows))
	}

	idxs := make([]int, n)
	sampleuv.WithoutReplacement(idxs, len(selected.Rows), src)
	sort.Ints(idxs)

	rows := make([][]string, n)
	for i, idx := range idxs {
		rows[i] = selected.Rows[idx]
	}
	selected.Rows = rows
	return selected, nil
}

// WriteCSV writes the header followed by the rows.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// SampleFilename is the output name for the sample of one interaction type.
func SampleFilename(interaction string) string {
	return "sample_" + strings.ToLower(interaction) + ".csv"
}
