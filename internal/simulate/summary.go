package simulate

import (
	"fmt"

	"github.com/janpfeifer/antsGo/internal/state"
)

// Summary of a set of games.
type Summary struct {
	Games, Won, Lost, Ongoing int

	// TotalTurns and TotalFailedDeployments over all games.
	TotalTurns, TotalFailedDeployments int
}

// Add the result of one game to the summary.
func (s *Summary) Add(r Result) {
	s.Games++
	switch r.Outcome {
	case state.OutcomeWon:
		s.Won++
	case state.OutcomeLost:
		s.Lost++
	default:
		s.Ongoing++
	}
	s.TotalTurns += r.Turns
	s.TotalFailedDeployments += r.FailedDeployments
}

// Summarize the results of games.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.Add(r)
	}
	return s
}

// MeanTurns is the average length of the games, or 0 if there were none.
func (s Summary) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Games)
}

// WinRate is the fraction of the games won, or 0 if there were none.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Games)
}

// String implements fmt.Stringer.
func (s Summary) String() string {
	return fmt.Sprintf("%d games: %d won (%.1f%%), %d lost, %d unfinished; %.1f turns on average, %d failed deployments",
		s.Games, s.Won, 100*s.WinRate(), s.Lost, s.Ongoing, s.MeanTurns(), s.TotalFailedDeployments)
}
