package larreco

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const interactionsCSV = `id,interaction_type,energy
0,CCQEL_MU_P,1.0
1,CCRES_MU_P_PIPLUS,2.0
2,CCQEL_MU_P,3.0
3,CCCOH,4.0
4,CCQEL_MU_P,5.0
5,CCRES_MU_P_PIPLUS,6.0
6,CCQEL_MU_P,7.0
7,CCRES_E,8.0
`

func readInteractions(t *testing.T) *Table {
	t.Helper()
	table, err := ReadTable(strings.NewReader(interactionsCSV))
	require.NoError(t, err)
	return table
}

func TestValueCounts(t *testing.T) {
	counts, err := readInteractions(t).ValueCounts(InteractionTypeColumn)
	require.NoError(t, err)
	assert.Equal(t, []ValueCount{
		{Value: "CCQEL_MU_P", Count: 4},
		{Value: "CCRES_MU_P_PIPLUS", Count: 2},
		{Value: "CCCOH", Count: 1},
		{Value: "CCRES_E", Count: 1},
	}, counts)

	_, err = readInteractions(t).ValueCounts("missing")
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestSelectAll(t *testing.T) {
	selected, err := readInteractions(t).Select("CCRES_MU_P_PIPLUS", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "interaction_type", "energy"}, selected.Header)
	assert.Equal(t, [][]string{
		{"1", "CCRES_MU_P_PIPLUS", "2.0"},
		{"5", "CCRES_MU_P_PIPLUS", "6.0"},
	}, selected.Rows)

	selected, err = readInteractions(t).Select("NC", 0, nil)
	require.NoError(t, err)
	assert.Empty(t, selected.Rows)
}

func TestSelectSample(t *testing.T) {
	table := readInteractions(t)
	for seed := uint64(1); seed <= 20; seed++ {
		selected, err := table.Select("CCQEL_MU_P", 3, rand.NewSource(seed))
		require.NoError(t, err)
		require.Len(t, selected.Rows, 3)

		seen := make(map[string]bool)
		prev := ""
		for _, row := range selected.Rows {
			assert.Equal(t, "CCQEL_MU_P", row[1])
			assert.False(t, seen[row[0]], "row %s sampled twice", row[0])
			seen[row[0]] = true
			assert.Greater(t, row[0], prev, "input order kept")
			prev = row[0]
		}
	}
}

func TestSelectTooMany(t *testing.T) {
	_, err := readInteractions(t).Select("CCCOH", 2, rand.NewSource(1))
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	selected, err := readInteractions(t).Select("CCRES_E", 0, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, selected.WriteCSV(&buf))
	assert.Equal(t, "id,interaction_type,energy\n7,CCRES_E,8.0\n", buf.String())
}

func TestSampleFilename(t *testing.T) {
	assert.Equal(t, "sample_ccqel_mu_p.csv", SampleFilename("CCQEL_MU_P"))
}

func TestCountsPlot(t *testing.T) {
	counts, err := readInteractions(t).ValueCounts(InteractionTypeColumn)
	require.NoError(t, err)

	p, err := CountsPlot(counts, "counts")
	require.NoError(t, err)
	assert.Equal(t, "counts", p.Title.Text)
}
