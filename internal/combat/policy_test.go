package combat

import "testing"

type fixedRoll int

func (r fixedRoll) Percent() int { return int(r) }

func TestSelfTargetingKeepsOrder(t *testing.T) {
	ships := []Ship{ship("x", "f1", 1), ship("y", "f2", 1), ship("z", "f1", 1)}
	got := SelfTargeting{}.Assign(ships)

	if len(got) != len(ships) {
		t.Fatalf("expected %d assignments, got %d", len(ships), len(got))
	}
	for i, a := range got {
		if a.Attacker != ships[i].ID || a.Target != ships[i].ID {
			t.Errorf("assignment %d = %+v, want self-target of %s", i, a, ships[i].ID)
		}
	}
}

func TestEnemyTargetingNeverHitsOwnFleet(t *testing.T) {
	ships := []Ship{
		ship("a1", "a", 1), ship("a2", "a", 1),
		ship("b1", "b", 1), ship("b2", "b", 1), ship("b3", "b", 1),
	}
	fleetOf := map[string]string{}
	for _, s := range ships {
		fleetOf[s.ID] = s.Fleet
	}

	for _, roll := range []int{1, 33, 50, 67, 100} {
		for _, a := range (EnemyTargeting{Roller: fixedRoll(roll)}).Assign(ships) {
			if fleetOf[a.Attacker] == fleetOf[a.Target] {
				t.Errorf("roll %d: %s targets own fleet member %s", roll, a.Attacker, a.Target)
			}
		}
	}
}

func TestEnemyTargetingFallsBackToSelf(t *testing.T) {
	ships := []Ship{ship("a1", "a", 1), ship("a2", "a", 1)}
	for _, a := range (EnemyTargeting{Roller: fixedRoll(42)}).Assign(ships) {
		if a.Attacker != a.Target {
			t.Errorf("expected self-target without enemies, got %+v", a)
		}
	}
}

func TestPickBounds(t *testing.T) {
	tests := []struct {
		roll, n, want int
	}{
		{roll: 1, n: 3, want: 0},
		{roll: 100, n: 3, want: 2},
		{roll: 34, n: 3, want: 0},
		{roll: 35, n: 3, want: 1},
		{roll: 0, n: 4, want: 0},
		{roll: 250, n: 4, want: 3},
		{roll: 50, n: 1, want: 0},
	}

	for _, tt := range tests {
		if got := pick(tt.roll, tt.n); got != tt.want {
			t.Errorf("pick(%d, %d) = %d, want %d", tt.roll, tt.n, got, tt.want)
		}
	}
}

func TestEnemyTargetingWithoutRoller(t *testing.T) {
	ships := []Ship{ship("a", "red", 1), ship("b", "blue", 1)}

	got := EnemyTargeting{}.Assign(ships)
	if len(got) != len(ships) {
		t.Fatalf("expected %d assignments, got %d", len(ships), len(got))
	}
	for i, a := range got {
		if a.Attacker != ships[i].ID || a.Target != ships[i].ID {
			t.Errorf("assignment %d = %+v, want self-target", i, a)
		}
	}
}
