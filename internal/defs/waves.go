// internal/defs/waves.go
package defs

// KindWeight is one entry of a weighted spawn table.
type KindWeight struct {
	Kind   EnemyKind
	Weight int
}

// ScoreBracket describes spawning while the score is at least MinScore.
// The next interval is the kind's base time scaled by a multiplier drawn
// uniformly from [IntervalMin, IntervalMax].
type ScoreBracket struct {
	MinScore    int
	IntervalMin float64
	IntervalMax float64
	Weights     []KindWeight
}

// ScoreBrackets must stay sorted by MinScore ascending.
var ScoreBrackets = []ScoreBracket{
	{
		MinScore: 0, IntervalMin: 2.5, IntervalMax: 3.0,
		Weights: []KindWeight{{KindCrawler, 1}},
	},
	{
		MinScore: 10, IntervalMin: 2.0, IntervalMax: 2.5,
		Weights: []KindWeight{{KindCrawler, 3}, {KindShielded, 1}},
	},
	{
		MinScore: 25, IntervalMin: 1.5, IntervalMax: 2.0,
		Weights: []KindWeight{{KindCrawler, 3}, {KindShielded, 2}, {KindTank, 1}},
	},
	{
		MinScore: 50, IntervalMin: 1.0, IntervalMax: 1.5,
		Weights: []KindWeight{{KindCrawler, 3}, {KindShielded, 2}, {KindTank, 2}, {KindTurret, 1}},
	},
	{
		MinScore: 100, IntervalMin: 0.75, IntervalMax: 1.0,
		Weights: []KindWeight{{KindCrawler, 2}, {KindShielded, 2}, {KindTank, 2}, {KindTurret, 2}},
	},
}

// BracketFor returns the highest bracket whose MinScore does not exceed score.
func BracketFor(score int) ScoreBracket {
	b := ScoreBrackets[0]
	for _, candidate := range ScoreBrackets {
		if score >= candidate.MinScore {
			b = candidate
		}
	}
	return b
}
