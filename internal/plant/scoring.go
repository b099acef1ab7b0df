package plant

import "math"

// scoreFunc ranks a growth candidate; higher is better. All factors are
// normalized into [0,1] before weighting.
type scoreFunc func(Segment) float64

func heightFactor(s Segment, sceneHeight float64) float64 {
	return clamp01(1 - s.End.Y/sceneHeight)
}

func depthFactor(s Segment, sceneHeight float64) float64 {
	return clamp01(s.End.Y / sceneHeight)
}

func inverseAgeFactor(s Segment) float64 {
	return 1 / float64(s.Age+1)
}

// generationFactor soft-caps branching depth at ten generations.
func generationFactor(s Segment) float64 {
	return math.Min(1, float64(s.Generation)/10)
}

func lateralSpreadFactor(s Segment, sceneWidth float64) float64 {
	center := sceneWidth / 2
	return math.Min(1, math.Abs(s.End.X-center)/(0.8*center))
}

// branchScore favors tall, young, distal growth.
func branchScore(cfg Config) scoreFunc {
	return func(s Segment) float64 {
		return 0.5*heightFactor(s, cfg.SceneHeight) +
			0.3*inverseAgeFactor(s) +
			0.2*generationFactor(s)
	}
}

// leafScore favors sunlight exposure above all.
func leafScore(cfg Config) scoreFunc {
	return func(s Segment) float64 {
		return 0.6*heightFactor(s, cfg.SceneHeight) +
			0.2*generationFactor(s) +
			0.2*inverseAgeFactor(s)
	}
}

// rootScore favors deep, young, spreading roots.
func rootScore(cfg Config) scoreFunc {
	return func(s Segment) float64 {
		return 0.4*depthFactor(s, cfg.SceneHeight) +
			0.4*inverseAgeFactor(s) +
			0.2*lateralSpreadFactor(s, cfg.SceneWidth)
	}
}
