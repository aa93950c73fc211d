package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/fleetsim/internal/combat"
)

var testFleets = []combat.Fleet{
	{ID: "fed", Name: "Federation"},
	{ID: "kli", Name: "Klingon Empire"},
}

func TestShipsTable(t *testing.T) {
	ships := []combat.Ship{
		{ID: "1", Name: "USS Enterprise", Fleet: "fed", Integrity: 9},
		{ID: "2", Name: "Klingon Warbird", Fleet: "kli", Integrity: 2},
	}

	out := Ships(ships, testFleets, 0)

	for _, want := range []string{"Fleet", "Name", "Integrity", "USS Enterprise", "Klingon Empire", "9", "2"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestShipsTableLabels(t *testing.T) {
	ships := []combat.Ship{
		{ID: "0190a7c4-aaaa-7bbb-8ccc-dddddddddddd", Fleet: "gone", Integrity: 1},
	}

	out := Ships(ships, testFleets, 0)
	if !strings.Contains(out, "0190a7c4") {
		t.Errorf("expected shortened id for unnamed ship:\n%s", out)
	}
	if strings.Contains(out, "0190a7c4-aaaa") {
		t.Errorf("expected id to be shortened:\n%s", out)
	}
}

func TestLow(t *testing.T) {
	tests := []struct {
		integrity int64
		want      bool
	}{
		{integrity: 10, want: false},
		{integrity: 4, want: false},
		{integrity: 3, want: true},
		{integrity: 1, want: true},
	}

	for _, tt := range tests {
		if got := Low(combat.Ship{Integrity: tt.integrity}); got != tt.want {
			t.Errorf("Low(%d) = %v, want %v", tt.integrity, got, tt.want)
		}
	}
}

func TestTurnTitle(t *testing.T) {
	report := combat.Report{
		Outcome:   combat.Continue,
		Attacks:   3,
		Destroyed: []combat.Ship{{ID: "x"}},
		Survivors: []combat.Ship{{ID: "1", Name: "USS Enterprise", Fleet: "fed", Integrity: 5}},
	}

	out := Turn(4, report, testFleets, 0)
	if !strings.Contains(out, "Turn 4: 3 attacks, 1 destroyed") {
		t.Errorf("unexpected title:\n%s", out)
	}
}

func TestResult(t *testing.T) {
	winner := []combat.Ship{{ID: "1", Name: "USS Enterprise", Fleet: "fed", Integrity: 1}}

	if out := Result(10, nil, testFleets); !strings.Contains(out, "Mutual destruction after 10 turns") {
		t.Errorf("unexpected draw line: %s", out)
	}
	if out := Result(3, winner, testFleets); !strings.Contains(out, "USS Enterprise (Federation) wins after 3 turns") {
		t.Errorf("unexpected winner line: %s", out)
	}
}
