package report

import (
	"fmt"
	"io"

	"github.com/trophiclab/foodweb/cascade"
)

// Buckets is the cascade-size distribution of a run's events.
type Buckets struct {
	// ExactlyOne counts events that removed a single species.
	ExactlyOne int

	// TwoToFive counts cascades of 2–5 species.
	TwoToFive int

	// SixToTen counts cascades of 6–10 species.
	SixToTen int

	// Beyond counts cascades larger than 10 species.
	Beyond int
}

// CascadeBuckets classifies every event's total cascade size.
func CascadeBuckets(events []cascade.Event) Buckets {
	var b Buckets
	for _, ev := range events {
		switch {
		case ev.Total <= 1:
			b.ExactlyOne++
		case ev.Total <= 5:
			b.TwoToFive++
		case ev.Total <= 10:
			b.SixToTen++
		default:
			b.Beyond++
		}
	}
	return b
}

// WriteSummary renders the run summary for one web: species and basal
// counts, extinction tallies, robustness, and the cascade-size table.
func WriteSummary(w io.Writer, name string, sum cascade.Summary, buckets Buckets) error {
	basalFrac := 0.0
	if sum.OriginalSpecies > 0 {
		basalFrac = float64(sum.BasalSpecies) / float64(sum.OriginalSpecies) * 100
	}

	_, err := fmt.Fprintf(w,
		"Food-web analysis: %s\n"+
			"  species (original):    %d\n"+
			"  species (alive):       %d\n"+
			"  basal species:         %d (%.1f%%)\n"+
			"  operations:            %d\n"+
			"  primary extinctions:   %d\n"+
			"  secondary extinctions: %d\n"+
			"  affected survivors:    %d\n"+
			"  robustness:            %.3f\n"+
			"  cascade sizes:\n"+
			"    =1:    %d\n"+
			"    2-5:   %d\n"+
			"    6-10:  %d\n"+
			"    >10:   %d\n",
		name,
		sum.OriginalSpecies,
		sum.AliveSpecies,
		sum.BasalSpecies, basalFrac,
		sum.Operations,
		sum.PrimaryExtinct,
		sum.SecondaryExtinct,
		sum.Affected,
		sum.Robustness,
		buckets.ExactlyOne,
		buckets.TwoToFive,
		buckets.SixToTen,
		buckets.Beyond,
	)
	return err
}
