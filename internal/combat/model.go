// Package combat holds the ship/fleet/attack model and the turn engine that
// advances a battle one discrete step at a time.
package combat

// Fleet is a named faction grouping of ships.
type Fleet struct {
	ID   string
	Name string
}

// Ship is a combat unit. A ship with Integrity below 1 is destroyed.
type Ship struct {
	ID        string
	Name      string
	Fleet     string // Fleet.ID
	Integrity int64
}

// Destroyed reports whether the ship should be removed from play.
func (s Ship) Destroyed() bool {
	return s.Integrity < 1
}

// Attack pairs a per-turn sequence slot with the ship it strikes.
// The attack set is rebuilt from scratch every turn.
type Attack struct {
	ID     int64
	Target string // Ship.ID
}

// Outcome tells the driver whether another turn should run.
type Outcome int

const (
	Continue Outcome = iota
	Complete
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Roster is a starting lineup. It carries no ids; the store assigns them on reset.
type Roster struct {
	Fleets []FleetSeed
}

// FleetSeed describes one fleet of a roster and its ships.
type FleetSeed struct {
	Name  string
	Ships []ShipSeed
}

// ShipSeed describes one ship of a roster.
type ShipSeed struct {
	Name      string
	Integrity int64
}

// ShipCount returns the total number of ships across all fleets.
func (r Roster) ShipCount() int {
	n := 0
	for _, f := range r.Fleets {
		n += len(f.Ships)
	}
	return n
}
