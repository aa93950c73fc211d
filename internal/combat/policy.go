package combat

// Assignment says which ship an attack slot belongs to and which ship it strikes.
type Assignment struct {
	Attacker string
	Target   string
}

// TargetPolicy pairs attackers with targets for one turn.
// Assignments are turned into attacks in the order returned.
type TargetPolicy interface {
	Assign(ships []Ship) []Assignment
}

// SelfTargeting gives every ship exactly one attack, aimed at itself.
// This is the engine's default pairing.
type SelfTargeting struct{}

// Assign implements TargetPolicy.
func (SelfTargeting) Assign(ships []Ship) []Assignment {
	out := make([]Assignment, 0, len(ships))
	for _, s := range ships {
		out = append(out, Assignment{Attacker: s.ID, Target: s.ID})
	}
	return out
}

// Roller produces a uniformly distributed percentage in [1,100].
type Roller interface {
	Percent() int
}

// EnemyTargeting aims each ship at a ship of another fleet, picked with a
// percentage roll. A ship with no enemies left targets itself, so every ship
// still produces one attack per turn. Without a Roller it behaves like
// SelfTargeting.
type EnemyTargeting struct {
	Roller Roller
}

// Assign implements TargetPolicy.
func (p EnemyTargeting) Assign(ships []Ship) []Assignment {
	if p.Roller == nil {
		return SelfTargeting{}.Assign(ships)
	}
	out := make([]Assignment, 0, len(ships))
	for _, s := range ships {
		enemies := enemiesOf(s, ships)
		if len(enemies) == 0 {
			out = append(out, Assignment{Attacker: s.ID, Target: s.ID})
			continue
		}
		target := enemies[pick(p.Roller.Percent(), len(enemies))]
		out = append(out, Assignment{Attacker: s.ID, Target: target.ID})
	}
	return out
}

func enemiesOf(s Ship, ships []Ship) []Ship {
	var enemies []Ship
	for _, other := range ships {
		if other.Fleet != s.Fleet {
			enemies = append(enemies, other)
		}
	}
	return enemies
}

// pick maps a roll in [1,100] onto an index in [0,n).
func pick(roll, n int) int {
	roll = max(1, min(100, roll))
	return (roll - 1) * n / 100
}
