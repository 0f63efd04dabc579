package scoring

import "fmt"

const (
	baseScore      = 1000
	minScore       = 100
	cluePenalty    = 100 // per clue beyond the first
	secondsPerStep = 10  // one point lost per step
)

// CalculateScore returns the score for a win after cluesUsed clues and
// elapsedSeconds of play. The result is at most 1000 (one clue, no time) and
// never below 100. It is non-increasing in both arguments.
func CalculateScore(cluesUsed, elapsedSeconds int) int {
	// Penalties saturate at the available range so large inputs cannot overflow.
	const span = baseScore - minScore
	extraClues := max(0, cluesUsed-1)
	if extraClues > span/cluePenalty {
		return minScore
	}
	cluesPenalty := extraClues * cluePenalty
	timePenalty := max(0, elapsedSeconds/secondsPerStep)
	if timePenalty > span {
		return minScore
	}
	return max(minScore, baseScore-cluesPenalty-timePenalty)
}

// FormatTime renders seconds as m:ss
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
