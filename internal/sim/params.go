package sim

// Params holds every distribution and probability knob used by the
// generator. The defaults reproduce league-typical rates: a ~2.5s average
// release, pressure on roughly a third of dropbacks, and a 65% baseline
// completion rate.
type Params struct {
	// Timing distributions (gamma shape/scale, seconds).
	ThrowShape    float64 `yaml:"throw_shape"`
	ThrowScale    float64 `yaml:"throw_scale"`
	PressureShape float64 `yaml:"pressure_shape"`
	PressureScale float64 `yaml:"pressure_scale"`

	// PressureRate is the probability any rush generates pressure.
	PressureRate float64 `yaml:"pressure_rate"`

	// Situational categorical weights, indexed as documented on each field.
	DownWeights      []float64 `yaml:"down_weights"`      // downs 1-4
	AlignmentWeights []float64 `yaml:"alignment_weights"` // order of Alignments
	RusherWeights    []float64 `yaml:"rusher_weights"`    // 3-6 rushers

	DistanceShape float64 `yaml:"distance_shape"`
	DistanceScale float64 `yaml:"distance_scale"`
	FieldPosMin   float64 `yaml:"field_pos_min"`
	FieldPosMax   float64 `yaml:"field_pos_max"`
	ScoreDiffStd  float64 `yaml:"score_diff_std"`

	// Completion model.
	BaseCompletion  float64 `yaml:"base_completion"`
	PressurePenalty float64 `yaml:"pressure_penalty"`  // flat drop under pressure
	QuickPenalty    float64 `yaml:"quick_penalty"`     // extra drop when throwing under 2.0s with pressure
	ExtendedBonus   float64 `yaml:"extended_bonus"`    // clean-pocket bonus past 2.5s
	CompletionFloor float64 `yaml:"completion_floor"`
	CompletionCeil  float64 `yaml:"completion_ceil"`

	// Yardage model.
	YardsShape       float64 `yaml:"yards_shape"`
	YardsScale       float64 `yaml:"yards_scale"`
	ExtraYardsShape  float64 `yaml:"extra_yards_shape"` // bonus air yards past 2.5s
	ExtraYardsScale  float64 `yaml:"extra_yards_scale"`
	PressureYardLoss float64 `yaml:"pressure_yard_loss"` // upper bound of uniform loss

	// Sack model: pressure arriving before quickThreshold seconds with the
	// ball still out converts at SackRate.
	SackRate    float64 `yaml:"sack_rate"`
	SackLossMin float64 `yaml:"sack_loss_min"`
	SackLossMax float64 `yaml:"sack_loss_max"`

	// Interception model.
	PressureIntRate float64 `yaml:"pressure_int_rate"`
	BaseIntRate     float64 `yaml:"base_int_rate"`

	// Thresholds (seconds).
	QuickThrow    float64 `yaml:"quick_throw"`
	ExtendedThrow float64 `yaml:"extended_throw"`
	QuickPressure float64 `yaml:"quick_pressure"`
}

// DefaultParams returns the reference parameter set.
func DefaultParams() Params {
	return Params{
		ThrowShape:    2.0,
		ThrowScale:    1.25,
		PressureShape: 1.5,
		PressureScale: 1.5,
		PressureRate:  0.35,

		DownWeights:      []float64{0.35, 0.30, 0.25, 0.10},
		AlignmentWeights: []float64{0.15, 0.15, 0.35, 0.20, 0.15},
		RusherWeights:    []float64{0.10, 0.50, 0.30, 0.10},

		DistanceShape: 2.0,
		DistanceScale: 5.0,
		FieldPosMin:   5,
		FieldPosMax:   95,
		ScoreDiffStd:  10,

		BaseCompletion:  0.65,
		PressurePenalty: 0.15,
		QuickPenalty:    0.10,
		ExtendedBonus:   0.05,
		CompletionFloor: 0.30,
		CompletionCeil:  0.90,

		YardsShape:       2.0,
		YardsScale:       3.0,
		ExtraYardsShape:  1.0,
		ExtraYardsScale:  2.0,
		PressureYardLoss: 3.0,

		SackRate:    0.40,
		SackLossMin: 3.0,
		SackLossMax: 8.0,

		PressureIntRate: 0.03,
		BaseIntRate:     0.01,

		QuickThrow:    2.0,
		ExtendedThrow: 2.5,
		QuickPressure: 2.0,
	}
}
