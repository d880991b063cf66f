package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/trophiclab/foodweb/attack"
	"github.com/trophiclab/foodweb/centrality"
	"github.com/trophiclab/foodweb/rank"
)

// ErrCurveMismatch is returned when the two curves cover different
// fraction grids and cannot share a table.
var ErrCurveMismatch = errors.New("report: curve fraction grids differ")

// floatPrec is the fixed decimal precision for metric columns.
const floatPrec = 6

// WriteRankingCSV writes the vulnerability table: one row per ranked
// species with its cascade size and centrality profile. Species absent
// from metrics get zero-valued columns.
func WriteRankingCSV(w io.Writer, ranking []rank.Score, metrics map[string]centrality.Metrics) error {
	cw := csv.NewWriter(w)

	header := []string{
		"species", "cascade_size",
		"in_degree", "out_degree", "degree",
		"betweenness", "closeness", "pagerank",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: ranking header: %w", err)
	}

	for _, s := range ranking {
		m := metrics[s.Species]
		row := []string{
			s.Species,
			strconv.Itoa(s.Cascade),
			strconv.Itoa(m.Degree.In),
			strconv.Itoa(m.Degree.Out),
			strconv.Itoa(m.Degree.Total),
			formatFloat(m.Betweenness),
			formatFloat(m.Closeness),
			formatFloat(m.PageRank),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: ranking row %q: %w", s.Species, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCurvesCSV writes both attack curves into one table, one row per
// removal fraction. The curves must cover the same fraction grid.
func WriteCurvesCSV(w io.Writer, random, targeted attack.Curve) error {
	if len(random.Fractions) != len(targeted.Fractions) {
		return ErrCurveMismatch
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"fraction", "random_robustness", "targeted_robustness"}); err != nil {
		return fmt.Errorf("report: curves header: %w", err)
	}

	for i, f := range random.Fractions {
		row := []string{
			strconv.FormatFloat(f, 'f', 2, 64),
			formatFloat(random.Robustness[i]),
			formatFloat(targeted.Robustness[i]),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: curves row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', floatPrec, 64)
}
