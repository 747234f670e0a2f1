package matching

// Threshold modes. The general-purpose lookup accepts anything above 0.6;
// destination identity resolution requires 0.7. Callers must pick one
// explicitly so it is always clear which mode they are in.
const (
	DefaultThreshold  = 0.6
	ResolverThreshold = 0.7
)

// Match is the outcome of a best-match search.
type Match struct {
	Value string
	Index int
	Score float64
}

// FindBestMatch scores target against every candidate with the normalized
// similarity ratio and returns the highest-scoring candidate, provided its
// score exceeds the threshold. Earlier candidates win ties. Returns nil when
// nothing clears the threshold.
func FindBestMatch(target string, candidates []string, threshold float64) *Match {
	scorer := NewScorer()

	best := &Match{Index: -1}
	for i, candidate := range candidates {
		score := scorer.Ratio(target, candidate)
		if score > best.Score {
			best.Value = candidate
			best.Index = i
			best.Score = score
		}
	}

	if best.Index < 0 || best.Score <= threshold {
		return nil
	}
	return best
}
