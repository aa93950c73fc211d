package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/fleetsim/internal/combat"
)

// newID returns a time-ordered version 7 UUID.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("storage: cannot generate id: %w", err)
	}
	return id.String(), nil
}

// Reset wipes attacks, ships and fleets, then inserts the given roster with
// freshly generated ids. It runs in a single transaction.
func (s *Store) Reset(ctx context.Context, roster combat.Roster) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"attacks", "ships", "fleets"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}

	for _, f := range roster.Fleets {
		fleetID, err := newID()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO fleets (id, name) VALUES (?, ?)`, fleetID, f.Name,
		); err != nil {
			return fmt.Errorf("storage: cannot insert fleet %q: %w", f.Name, err)
		}

		for _, sh := range f.Ships {
			shipID, err := newID()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO ships (id, name, fleet, integrity) VALUES (?, ?, ?, ?)`,
				shipID, sh.Name, fleetID, sh.Integrity,
			); err != nil {
				return fmt.Errorf("storage: cannot insert ship %q: %w", sh.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit reset: %w", err)
	}
	return nil
}
