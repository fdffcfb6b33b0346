// Package export writes the simulated play table to CSV for downstream
// analysis in spreadsheet or notebook tooling.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"passrush/internal/sim"
)

// Header is the CSV column order, matching the play field names.
var Header = []string{
	"play_id", "time_to_throw", "pressure_applied", "time_to_pressure",
	"down", "distance", "field_position", "score_diff", "quarter",
	"def_alignment", "rushers", "completion", "yards_gained", "sack",
	"interception",
}

// WriteCSV streams plays to w in play-ID order.
func WriteCSV(w io.Writer, plays []sim.Play) error {
	ordered := make([]sim.Play, len(plays))
	copy(ordered, plays)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].PlayID < ordered[j].PlayID })

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range ordered {
		record := []string{
			strconv.Itoa(p.PlayID),
			strconv.FormatFloat(p.TimeToThrow, 'f', 2, 64),
			boolField(p.Pressure),
			strconv.FormatFloat(p.TimeToPressure, 'f', 2, 64),
			strconv.Itoa(p.Down),
			strconv.FormatFloat(p.Distance, 'f', 1, 64),
			strconv.FormatFloat(p.FieldPosition, 'f', -1, 64),
			strconv.FormatFloat(p.ScoreDiff, 'f', -1, 64),
			strconv.Itoa(p.Quarter),
			string(p.Alignment),
			strconv.Itoa(p.Rushers),
			boolField(p.Complete),
			strconv.FormatFloat(p.YardsGained, 'f', 1, 64),
			boolField(p.Sack),
			boolField(p.Interception),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write play %d: %w", p.PlayID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes plays to path, creating parent directories.
func WriteCSVFile(path string, plays []sim.Play) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(f, plays)
}

// boolField renders booleans the way the analysis pipeline expects: 0/1.
func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
