package plant

// Tuning collects the growth heuristics. The constants here are visual
// tuning defaults, not load-bearing contracts; presets and tests may
// override them through Config.Tuning.
type Tuning struct {
	StageCap      int     // growth stops once the stage counter reaches this
	TickInterval  float64 // time-units between stage executions
	QuantizeStep  float64 // growth map grid step
	SelectionBias float64 // power-curve exponent for top-k selection

	// Minimum spacing from already-seeded growth, per part family. The
	// relaxed value applies to candidates admitted by the adjacency
	// relaxation. Roots use tighter spacing to allow dense fans.
	BranchSpacing        float64
	BranchSpacingRelaxed float64
	LeafSpacing          float64
	LeafSpacingRelaxed   float64
	RootSpacing          float64
	RootSpacingRelaxed   float64

	// Candidate counts per stage: base + stage*perStage.
	BranchBase     int
	BranchPerStage int
	LeafBase       int
	LeafPerStage   int
	RootBase       int
	RootPerStage   int

	BranchCone   float64 // degrees of jitter around the parent direction
	RootCone     float64 // degrees of the downward root cone
	UpBias       float64 // vertical pull applied to branch directions
	LeafUpBias   float64 // vertical pull applied to leaf directions
	RootDownBias float64 // vertical pull applied to root directions

	// Child sizing relative to the parent candidate. The main continuation
	// child is thicker and longer than side children; both stay smaller
	// than the parent.
	MainLengthFactor float64
	MainWidthFactor  float64
	SideLengthFactor float64
	SideWidthFactor  float64
	SideChildChance  float64

	LeafLengthFactor float64
	LeafWidthFactor  float64

	// Branch overlap checks are skipped for this many initial stages so an
	// activation always shows visible growth.
	OverlapFreeStages int

	// Relaxation: when fewer terminals than RelaxThreshold remain, admit up
	// to RelaxCap adjacent-type sites so growth never stalls once started.
	RelaxThreshold int
	RelaxCap       int

	// LeafMaxAge excludes old wood from sprouting leaves; -1 disables the
	// age filter.
	LeafMaxAge int
}

func DefaultTuning() Tuning {
	return Tuning{
		StageCap:      5,
		TickInterval:  0.5,
		QuantizeStep:  5,
		SelectionBias: 2,

		BranchSpacing:        18,
		BranchSpacingRelaxed: 10,
		LeafSpacing:          15,
		LeafSpacingRelaxed:   10,
		RootSpacing:          12,
		RootSpacingRelaxed:   5,

		BranchBase:     2,
		BranchPerStage: 2,
		LeafBase:       3,
		LeafPerStage:   2,
		RootBase:       2,
		RootPerStage:   1,

		BranchCone:   60,
		RootCone:     90,
		UpBias:       0.3,
		LeafUpBias:   0.2,
		RootDownBias: 0.15,

		MainLengthFactor: 0.9,
		MainWidthFactor:  0.85,
		SideLengthFactor: 0.65,
		SideWidthFactor:  0.6,
		SideChildChance:  0.5,

		LeafLengthFactor: 0.5,
		LeafWidthFactor:  0.9,

		OverlapFreeStages: 2,

		RelaxThreshold: 2,
		RelaxCap:       6,

		LeafMaxAge: 8,
	}
}
