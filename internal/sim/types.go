// Package sim generates synthetic NFL pass-play data. Each play samples
// situational fields from fixed distributions and then derives its outcome
// (completion, yardage, sack, interception) from conditional probability
// rules chained on the sampled inputs.
package sim

// Alignment identifies the defensive front on a play.
type Alignment string

const (
	Align43     Alignment = "4-3 Base"
	Align34     Alignment = "3-4 Base"
	AlignNickel Alignment = "Nickel"
	AlignDime   Alignment = "Dime"
	AlignBlitz  Alignment = "Blitz"
)

// Alignments lists every defensive alignment in sampling-weight order.
var Alignments = []Alignment{Align43, Align34, AlignNickel, AlignDime, AlignBlitz}

// Play is one simulated pass attempt. Timing fields are rounded to two
// decimals, yardage fields to one, matching the exported CSV precision.
type Play struct {
	PlayID         int       `json:"play_id"`
	TimeToThrow    float64   `json:"time_to_throw"`
	Pressure       bool      `json:"pressure_applied"`
	TimeToPressure float64   `json:"time_to_pressure"`
	Down           int       `json:"down"`
	Distance       float64   `json:"distance"`
	FieldPosition  float64   `json:"field_position"`
	ScoreDiff      float64   `json:"score_diff"`
	Quarter        int       `json:"quarter"`
	Alignment      Alignment `json:"def_alignment"`
	Rushers        int       `json:"rushers"`
	Complete       bool      `json:"completion"`
	YardsGained    float64   `json:"yards_gained"`
	Sack           bool      `json:"sack"`
	Interception   bool      `json:"interception"`
}

// PressureSuccess reports whether the defense won the down: the pass fell
// incomplete, the rusher got home, or the ball was picked off.
func (p Play) PressureSuccess() bool {
	return !p.Complete || p.Sack || p.Interception
}
