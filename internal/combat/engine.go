package combat

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/vovakirdan/fleetsim/internal/combat")

// EngineConfig holds the collaborators of an Engine.
type EngineConfig struct {
	// Policy pairs attackers with targets. Defaults to SelfTargeting.
	Policy TargetPolicy

	// Logger receives per-attack debug output. Defaults to a discarding logger.
	Logger *log.Logger
}

// Engine resolves turns against a Store.
// It keeps no state between turns; everything lives in the store.
type Engine struct {
	store  Store
	policy TargetPolicy
	logger *log.Logger
}

// Report describes what a single turn did.
type Report struct {
	Outcome   Outcome
	Attacks   int
	Destroyed []Ship
	Survivors []Ship
}

// NewEngine creates an engine driving the given store.
func NewEngine(store Store, cfg EngineConfig) *Engine {
	if cfg.Policy == nil {
		cfg.Policy = SelfTargeting{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Engine{
		store:  store,
		policy: cfg.Policy,
		logger: cfg.Logger,
	}
}

// Turn runs one simulation step: generate attacks, apply damage, remove
// destroyed ships and check for termination. Effects are committed to the
// store as they happen; a failure part way leaves earlier writes in place.
func (e *Engine) Turn(ctx context.Context) (report Report, err error) {
	ctx, span := tracer.Start(ctx, "combat.Turn")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(
			attribute.Int("combat.attacks", report.Attacks),
			attribute.Int("combat.destroyed", len(report.Destroyed)),
			attribute.Int("combat.survivors", len(report.Survivors)),
			attribute.String("combat.outcome", report.Outcome.String()),
		)
		span.End()
	}()

	if report.Attacks, err = e.generateAttacks(ctx); err != nil {
		return report, err
	}
	if err = e.applyDamage(ctx); err != nil {
		return report, err
	}
	if report.Destroyed, err = e.sweep(ctx); err != nil {
		return report, err
	}

	report.Survivors, err = e.store.Ships().List(ctx)
	if err != nil {
		return report, fmt.Errorf("combat: list survivors: %w", err)
	}
	if len(report.Survivors) < 2 {
		report.Outcome = Complete
	} else {
		report.Outcome = Continue
	}
	return report, nil
}

func (e *Engine) generateAttacks(ctx context.Context) (int, error) {
	if err := e.store.Attacks().Clear(ctx); err != nil {
		return 0, fmt.Errorf("combat: clear attacks: %w", err)
	}

	ships, err := e.store.Ships().List(ctx)
	if err != nil {
		return 0, fmt.Errorf("combat: list ships: %w", err)
	}

	var seq int64
	for _, a := range e.policy.Assign(ships) {
		seq++
		if err := e.store.Attacks().Insert(ctx, Attack{ID: seq, Target: a.Target}); err != nil {
			return 0, fmt.Errorf("combat: insert attack %d: %w", seq, err)
		}
		e.logger.Debug("attack assigned", "attack", seq, "attacker", a.Attacker, "target", a.Target)
	}
	return int(seq), nil
}

// applyDamage re-reads the target for every attack, so attacks sharing a
// target stack one after the other.
func (e *Engine) applyDamage(ctx context.Context) error {
	attacks, err := e.store.Attacks().List(ctx)
	if err != nil {
		return fmt.Errorf("combat: list attacks: %w", err)
	}

	for _, a := range attacks {
		ship, err := e.store.Ships().Get(ctx, a.Target)
		if err != nil {
			return fmt.Errorf("combat: attack %d target %q: %w", a.ID, a.Target, err)
		}
		ship.Integrity--
		if err := e.store.Ships().Update(ctx, ship); err != nil {
			return fmt.Errorf("combat: damage ship %q: %w", ship.ID, err)
		}
		e.logger.Debug("hit", "attack", a.ID, "ship", ship.ID, "integrity", ship.Integrity)
	}
	return nil
}

func (e *Engine) sweep(ctx context.Context) ([]Ship, error) {
	ships, err := e.store.Ships().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("combat: list ships: %w", err)
	}

	var destroyed []Ship
	for _, s := range ships {
		if !s.Destroyed() {
			continue
		}
		if err := e.store.Ships().Delete(ctx, s.ID); err != nil {
			return destroyed, fmt.Errorf("combat: delete ship %q: %w", s.ID, err)
		}
		destroyed = append(destroyed, s)
	}
	return destroyed, nil
}
