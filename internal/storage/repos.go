package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/fleetsim/internal/combat"
)

type shipRepo struct {
	db *sql.DB
}

func (r shipRepo) List(ctx context.Context) ([]combat.Ship, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, fleet, integrity FROM ships ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ships: %w", err)
	}
	defer rows.Close()

	var ships []combat.Ship
	for rows.Next() {
		var s combat.Ship
		var fleet sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &fleet, &s.Integrity); err != nil {
			return nil, fmt.Errorf("storage: cannot scan ship: %w", err)
		}
		s.Fleet = fleet.String
		ships = append(ships, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ships, nil
}

func (r shipRepo) Get(ctx context.Context, id string) (combat.Ship, error) {
	var s combat.Ship
	var fleet sql.NullString

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, fleet, integrity FROM ships WHERE id = ?`, id,
	).Scan(&s.ID, &s.Name, &fleet, &s.Integrity)
	if errors.Is(err, sql.ErrNoRows) {
		return combat.Ship{}, fmt.Errorf("storage: ship %q: %w", id, combat.ErrShipNotFound)
	}
	if err != nil {
		return combat.Ship{}, fmt.Errorf("storage: cannot query ship: %w", err)
	}

	s.Fleet = fleet.String
	return s, nil
}

func (r shipRepo) Insert(ctx context.Context, s combat.Ship) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ships (id, name, fleet, integrity) VALUES (?, ?, ?, ?)`,
		s.ID, s.Name, nullable(s.Fleet), s.Integrity,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot insert ship: %w", err)
	}
	return nil
}

func (r shipRepo) Update(ctx context.Context, s combat.Ship) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE ships SET name = ?, fleet = ?, integrity = ? WHERE id = ?`,
		s.Name, nullable(s.Fleet), s.Integrity, s.ID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update ship: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage: ship %q: %w", s.ID, combat.ErrShipNotFound)
	}
	return nil
}

func (r shipRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ships WHERE id = ?`, id); err != nil {
		return fmt.Errorf("storage: cannot delete ship: %w", err)
	}
	return nil
}

type fleetRepo struct {
	db *sql.DB
}

func (r fleetRepo) List(ctx context.Context) ([]combat.Fleet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM fleets ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query fleets: %w", err)
	}
	defer rows.Close()

	var fleets []combat.Fleet
	for rows.Next() {
		var f combat.Fleet
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan fleet: %w", err)
		}
		fleets = append(fleets, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return fleets, nil
}

func (r fleetRepo) Get(ctx context.Context, id string) (combat.Fleet, error) {
	var f combat.Fleet
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM fleets WHERE id = ?`, id).Scan(&f.ID, &f.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return combat.Fleet{}, fmt.Errorf("storage: fleet %q: %w", id, combat.ErrFleetNotFound)
	}
	if err != nil {
		return combat.Fleet{}, fmt.Errorf("storage: cannot query fleet: %w", err)
	}
	return f, nil
}

func (r fleetRepo) Insert(ctx context.Context, f combat.Fleet) error {
	if _, err := r.db.ExecContext(ctx, `INSERT INTO fleets (id, name) VALUES (?, ?)`, f.ID, f.Name); err != nil {
		return fmt.Errorf("storage: cannot insert fleet: %w", err)
	}
	return nil
}

func (r fleetRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM fleets WHERE id = ?`, id); err != nil {
		return fmt.Errorf("storage: cannot delete fleet: %w", err)
	}
	return nil
}

type attackRepo struct {
	db *sql.DB
}

func (r attackRepo) List(ctx context.Context) ([]combat.Attack, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, target FROM attacks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attacks: %w", err)
	}
	defer rows.Close()

	var attacks []combat.Attack
	for rows.Next() {
		var a combat.Attack
		var target sql.NullString
		if err := rows.Scan(&a.ID, &target); err != nil {
			return nil, fmt.Errorf("storage: cannot scan attack: %w", err)
		}
		// Target is NULL once the ship it pointed at has been destroyed.
		a.Target = target.String
		attacks = append(attacks, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return attacks, nil
}

func (r attackRepo) Insert(ctx context.Context, a combat.Attack) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO attacks (id, target) VALUES (?, ?)`, a.ID, a.Target,
	); err != nil {
		return fmt.Errorf("storage: cannot insert attack: %w", err)
	}
	return nil
}

func (r attackRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM attacks`); err != nil {
		return fmt.Errorf("storage: cannot clear attacks: %w", err)
	}
	return nil
}
