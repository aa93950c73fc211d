package combat

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var errInjected = errors.New("injected failure")

// memStore is an in-memory Store used by the engine tests.
// Setting failOn to an operation name ("ships.update", ...) makes that call fail.
type memStore struct {
	ships   []Ship
	fleets  []Fleet
	attacks []Attack
	failOn  string
}

func newMemStore(ships ...Ship) *memStore {
	return &memStore{ships: append([]Ship(nil), ships...)}
}

func (m *memStore) Ships() ShipRepository     { return memShips{m} }
func (m *memStore) Fleets() FleetRepository   { return memFleets{m} }
func (m *memStore) Attacks() AttackRepository { return memAttacks{m} }

func (m *memStore) check(op string) error {
	if m.failOn == op {
		return fmt.Errorf("%s: %w", op, errInjected)
	}
	return nil
}

func (m *memStore) ship(id string) (Ship, bool) {
	for _, s := range m.ships {
		if s.ID == id {
			return s, true
		}
	}
	return Ship{}, false
}

type memShips struct{ m *memStore }

func (r memShips) List(context.Context) ([]Ship, error) {
	if err := r.m.check("ships.list"); err != nil {
		return nil, err
	}
	return append([]Ship(nil), r.m.ships...), nil
}

func (r memShips) Get(_ context.Context, id string) (Ship, error) {
	if err := r.m.check("ships.get"); err != nil {
		return Ship{}, err
	}
	s, ok := r.m.ship(id)
	if !ok {
		return Ship{}, ErrShipNotFound
	}
	return s, nil
}

func (r memShips) Insert(_ context.Context, s Ship) error {
	if err := r.m.check("ships.insert"); err != nil {
		return err
	}
	r.m.ships = append(r.m.ships, s)
	return nil
}

func (r memShips) Update(_ context.Context, s Ship) error {
	if err := r.m.check("ships.update"); err != nil {
		return err
	}
	for i := range r.m.ships {
		if r.m.ships[i].ID == s.ID {
			r.m.ships[i] = s
			return nil
		}
	}
	return ErrShipNotFound
}

func (r memShips) Delete(_ context.Context, id string) error {
	if err := r.m.check("ships.delete"); err != nil {
		return err
	}
	for i := range r.m.ships {
		if r.m.ships[i].ID == id {
			r.m.ships = append(r.m.ships[:i], r.m.ships[i+1:]...)
			return nil
		}
	}
	return nil
}

type memFleets struct{ m *memStore }

func (r memFleets) List(context.Context) ([]Fleet, error) {
	return append([]Fleet(nil), r.m.fleets...), nil
}

func (r memFleets) Get(_ context.Context, id string) (Fleet, error) {
	for _, f := range r.m.fleets {
		if f.ID == id {
			return f, nil
		}
	}
	return Fleet{}, ErrFleetNotFound
}

func (r memFleets) Insert(_ context.Context, f Fleet) error {
	r.m.fleets = append(r.m.fleets, f)
	return nil
}

func (r memFleets) Delete(_ context.Context, id string) error {
	for i := range r.m.fleets {
		if r.m.fleets[i].ID == id {
			r.m.fleets = append(r.m.fleets[:i], r.m.fleets[i+1:]...)
			return nil
		}
	}
	return nil
}

type memAttacks struct{ m *memStore }

func (r memAttacks) List(context.Context) ([]Attack, error) {
	if err := r.m.check("attacks.list"); err != nil {
		return nil, err
	}
	out := append([]Attack(nil), r.m.attacks...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memAttacks) Insert(_ context.Context, a Attack) error {
	if err := r.m.check("attacks.insert"); err != nil {
		return err
	}
	for _, existing := range r.m.attacks {
		if existing.ID == a.ID {
			return fmt.Errorf("duplicate attack id %d", a.ID)
		}
	}
	r.m.attacks = append(r.m.attacks, a)
	return nil
}

func (r memAttacks) Clear(context.Context) error {
	if err := r.m.check("attacks.clear"); err != nil {
		return err
	}
	r.m.attacks = nil
	return nil
}
