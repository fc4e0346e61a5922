package services

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
)

var (
	testClub     = models.Team{ID: primitive.NewObjectID(), Name: "Club FC", IsClub: true}
	testOpponent = models.Team{ID: primitive.NewObjectID(), Name: "Rovers"}
)

func makeMatch(isHome bool, clubGoals, opponentGoals int) *models.Match {
	m := &models.Match{
		ID:       primitive.NewObjectID(),
		IsHome:   isHome,
		Opponent: testOpponent,
	}
	for i := 0; i < clubGoals; i++ {
		m.Goals = append(m.Goals, models.GoalEvent{ID: primitive.NewObjectID(), ForClub: true, Minute: 10 + i})
	}
	for i := 0; i < opponentGoals; i++ {
		m.Goals = append(m.Goals, models.GoalEvent{ID: primitive.NewObjectID(), ForClub: false, Minute: 50 + i})
	}
	return m
}

func TestResolveTeams(t *testing.T) {
	home, away := ResolveTeams(makeMatch(true, 0, 0), testClub)
	if home.ID != testClub.ID || away.ID != testOpponent.ID {
		t.Errorf("home fixture: got home=%s away=%s, want club home", home.Name, away.Name)
	}

	home, away = ResolveTeams(makeMatch(false, 0, 0), testClub)
	if home.ID != testOpponent.ID || away.ID != testClub.ID {
		t.Errorf("away fixture: got home=%s away=%s, want opponent home", home.Name, away.Name)
	}
}

func TestComputeMatchMetrics_WinStatus(t *testing.T) {
	tests := []struct {
		name          string
		clubGoals     int
		opponentGoals int
		want          models.WinStatus
	}{
		{"two all is a draw", 2, 2, models.WinStatusDraw},
		{"three one is a win", 3, 1, models.WinStatusWin},
		{"nil one is a loss", 0, 1, models.WinStatusLoss},
		{"goalless is a draw", 0, 0, models.WinStatusDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMatchMetrics(makeMatch(true, tt.clubGoals, tt.opponentGoals), testClub)
			if got.WinStatus != tt.want {
				t.Errorf("WinStatus = %q, want %q", got.WinStatus, tt.want)
			}
		})
	}
}

func TestComputeMatchMetrics_PartitionIsTotal(t *testing.T) {
	m := makeMatch(true, 3, 2)
	got := ComputeMatchMetrics(m, testClub)

	if len(got.Goals.Club)+len(got.Goals.Opponent) != len(m.Goals) {
		t.Errorf("partition dropped events: club=%d opponent=%d total=%d",
			len(got.Goals.Club), len(got.Goals.Opponent), len(m.Goals))
	}
	for _, g := range got.Goals.Club {
		if !g.ForClub {
			t.Errorf("opponent goal %s landed in club partition", g.ID.Hex())
		}
	}
	for _, g := range got.Goals.Opponent {
		if g.ForClub {
			t.Errorf("club goal %s landed in opponent partition", g.ID.Hex())
		}
	}
}

func TestComputeMatchMetrics_HomeAwayTallies(t *testing.T) {
	// Home fixture: club tally goes to the home side.
	got := ComputeMatchMetrics(makeMatch(true, 2, 1), testClub)
	if got.Goals.Home != 2 || got.Goals.Away != 1 {
		t.Errorf("home fixture tallies = %d-%d, want 2-1", got.Goals.Home, got.Goals.Away)
	}
	if got.Teams.Home.ID != testClub.ID || got.Teams.Away.ID != testOpponent.ID {
		t.Errorf("home fixture teams = %s/%s, want club home", got.Teams.Home.Name, got.Teams.Away.Name)
	}

	// Away fixture, same counts: tallies and teams flip sides.
	got = ComputeMatchMetrics(makeMatch(false, 2, 1), testClub)
	if got.Goals.Home != 1 || got.Goals.Away != 2 {
		t.Errorf("away fixture tallies = %d-%d, want 1-2", got.Goals.Home, got.Goals.Away)
	}
	if got.Teams.Home.ID != testOpponent.ID || got.Teams.Away.ID != testClub.ID {
		t.Errorf("away fixture teams = %s/%s, want opponent home", got.Teams.Home.Name, got.Teams.Away.Name)
	}
}

func TestComputeMatchMetrics_NoGoals(t *testing.T) {
	m := makeMatch(true, 0, 0)
	m.Goals = nil

	got := ComputeMatchMetrics(m, testClub)

	if got.Goals.Club == nil || got.Goals.Opponent == nil {
		t.Error("partitions must be empty slices, not nil")
	}
	if len(got.Goals.Club) != 0 || len(got.Goals.Opponent) != 0 {
		t.Errorf("expected empty partitions, got %d/%d", len(got.Goals.Club), len(got.Goals.Opponent))
	}
	if got.Goals.Home != 0 || got.Goals.Away != 0 {
		t.Errorf("expected 0-0, got %d-%d", got.Goals.Home, got.Goals.Away)
	}
	if got.WinStatus != models.WinStatusDraw {
		t.Errorf("WinStatus = %q, want draw", got.WinStatus)
	}
}

func TestComputeMatchMetrics_Deterministic(t *testing.T) {
	m := makeMatch(false, 1, 3)

	first := ComputeMatchMetrics(m, testClub)
	second := ComputeMatchMetrics(m, testClub)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two calls diverged: %+v vs %+v", first, second)
	}
}
