package combat

import (
	"context"
	"errors"
)

var (
	// ErrShipNotFound is returned when a ship id has no row.
	ErrShipNotFound = errors.New("ship not found")
	// ErrFleetNotFound is returned when a fleet id has no row.
	ErrFleetNotFound = errors.New("fleet not found")
)

// ShipRepository gives access to persisted ships.
// List returns ships in creation order.
type ShipRepository interface {
	List(ctx context.Context) ([]Ship, error)
	Get(ctx context.Context, id string) (Ship, error)
	Insert(ctx context.Context, ship Ship) error
	Update(ctx context.Context, ship Ship) error
	Delete(ctx context.Context, id string) error
}

// FleetRepository gives access to persisted fleets.
type FleetRepository interface {
	List(ctx context.Context) ([]Fleet, error)
	Get(ctx context.Context, id string) (Fleet, error)
	Insert(ctx context.Context, fleet Fleet) error
	Delete(ctx context.Context, id string) error
}

// AttackRepository gives access to the current turn's attacks.
// List returns attacks in ascending id order.
type AttackRepository interface {
	List(ctx context.Context) ([]Attack, error)
	Insert(ctx context.Context, attack Attack) error
	Clear(ctx context.Context) error
}

// Store is the storage gateway the engine drives.
type Store interface {
	Ships() ShipRepository
	Fleets() FleetRepository
	Attacks() AttackRepository
}
