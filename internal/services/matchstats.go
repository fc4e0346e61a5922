package services

import "club-app/internal/models"

// TeamPair identifies which side of a fixture each team played.
type TeamPair struct {
	Home models.Team `json:"home"`
	Away models.Team `json:"away"`
}

// GoalBreakdown partitions a match's goal events between the club and the
// opponent and carries the per-side tallies.
type GoalBreakdown struct {
	Club     []models.GoalEvent `json:"club"`
	Opponent []models.GoalEvent `json:"opponent"`
	Home     int                `json:"home"`
	Away     int                `json:"away"`
}

type MatchMetrics struct {
	Goals     GoalBreakdown    `json:"goals"`
	Teams     TeamPair         `json:"teams"`
	WinStatus models.WinStatus `json:"win_status"`
}

// ResolveTeams maps the fixture to home/away identities. The club is home
// when the match was played at home, otherwise the opponent is. A missing
// opponent leaves its slot zero-valued; validating match completeness is the
// caller's job.
func ResolveTeams(m *models.Match, club models.Team) (home, away models.Team) {
	if m.IsHome {
		return club, m.Opponent
	}
	return m.Opponent, club
}

// ComputeMatchMetrics derives the outcome summary for one fixture. It is pure
// and deterministic: no store access, no side effects, never an error. A
// match without goal events is a 0-0 draw.
func ComputeMatchMetrics(m *models.Match, club models.Team) MatchMetrics {
	clubGoals := make([]models.GoalEvent, 0)
	opponentGoals := make([]models.GoalEvent, 0)
	for _, g := range m.Goals {
		if g.ForClub {
			clubGoals = append(clubGoals, g)
		} else {
			opponentGoals = append(opponentGoals, g)
		}
	}

	// Tie-break order matters: loss, then win, then draw. Equal counts,
	// 0-0 included, are a draw.
	var status models.WinStatus
	switch {
	case len(clubGoals) < len(opponentGoals):
		status = models.WinStatusLoss
	case len(clubGoals) > len(opponentGoals):
		status = models.WinStatusWin
	default:
		status = models.WinStatusDraw
	}

	home, away := ResolveTeams(m, club)

	breakdown := GoalBreakdown{
		Club:     clubGoals,
		Opponent: opponentGoals,
	}
	if m.IsHome {
		breakdown.Home = len(clubGoals)
		breakdown.Away = len(opponentGoals)
	} else {
		breakdown.Home = len(opponentGoals)
		breakdown.Away = len(clubGoals)
	}

	return MatchMetrics{
		Goals:     breakdown,
		Teams:     TeamPair{Home: home, Away: away},
		WinStatus: status,
	}
}
