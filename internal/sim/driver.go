// Package sim drives the turn engine until a battle concludes.
package sim

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fleetsim/internal/combat"
	"github.com/vovakirdan/fleetsim/internal/render"
)

// Config holds the output collaborators of a Driver.
type Config struct {
	// Out receives the rendered tables. Nil disables rendering.
	Out io.Writer

	// Logger receives per-turn progress. Defaults to a discarding logger.
	Logger *log.Logger

	// Width fixes the table width; 0 sizes tables to their content.
	Width int
}

// Summary is the final state of a finished run.
type Summary struct {
	Turns     int
	Survivors []combat.Ship
}

// Driver repeatedly invokes the engine until it reports completion.
type Driver struct {
	engine *combat.Engine
	store  combat.Store
	cfg    Config
}

// New creates a driver for the given engine and the store it runs against.
func New(engine *combat.Engine, store combat.Store, cfg Config) *Driver {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Driver{engine: engine, store: store, cfg: cfg}
}

// Run plays turns until the engine returns Complete. Cancellation is only
// observed between turns; a turn that has started always runs to the end.
func (d *Driver) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	fleets, err := d.store.Fleets().List(ctx)
	if err != nil {
		return summary, fmt.Errorf("sim: list fleets: %w", err)
	}
	ships, err := d.store.Ships().List(ctx)
	if err != nil {
		return summary, fmt.Errorf("sim: list ships: %w", err)
	}

	d.cfg.Logger.Info("battle starting", "fleets", len(fleets), "ships", len(ships))
	d.print(render.Ships(ships, fleets, d.cfg.Width))

	for turn := 1; ; turn++ {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("sim: stopped before turn %d: %w", turn, err)
		}

		report, err := d.engine.Turn(context.WithoutCancel(ctx))
		if err != nil {
			return summary, fmt.Errorf("sim: turn %d: %w", turn, err)
		}
		summary.Turns = turn
		summary.Survivors = report.Survivors

		for _, s := range report.Destroyed {
			d.cfg.Logger.Info("ship destroyed", "turn", turn, "ship", s.Name, "id", s.ID)
		}
		d.cfg.Logger.Info("turn resolved",
			"turn", turn,
			"attacks", report.Attacks,
			"destroyed", len(report.Destroyed),
			"survivors", len(report.Survivors),
			"outcome", report.Outcome,
		)
		d.print(render.Turn(turn, report, fleets, d.cfg.Width))

		if report.Outcome == combat.Complete {
			d.print(render.Result(turn, report.Survivors, fleets))
			return summary, nil
		}
	}
}

func (d *Driver) print(s string) {
	if d.cfg.Out == nil {
		return
	}
	fmt.Fprintln(d.cfg.Out, s)
}
