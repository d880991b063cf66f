// Package report renders analysis results as CSV tables and a plain
// text run summary.
//
// What
//
//   - WriteRankingCSV: one row per ranked species, its cascade size
//     joined with the centrality profile.
//   - WriteCurvesCSV: the random and targeted robustness curves side by
//     side, one row per removal fraction.
//   - CascadeBuckets: distribution of event cascade sizes into the
//     buckets =1, 2–5, 6–10, >10.
//   - WriteSummary: human-readable run summary (species counts, basal
//     fraction, extinction tallies, robustness, bucket table).
//
// Output is deterministic: rows follow the caller's ranking/fraction
// order and floats print with fixed precision, so byte-identical inputs
// yield byte-identical reports.
package report
