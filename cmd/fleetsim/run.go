package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fleetsim/internal/combat"
	"github.com/vovakirdan/fleetsim/internal/config"
	"github.com/vovakirdan/fleetsim/internal/random"
	"github.com/vovakirdan/fleetsim/internal/registry"
	"github.com/vovakirdan/fleetsim/internal/sim"
	"github.com/vovakirdan/fleetsim/internal/storage"
)

// maxTableWidth is the terminal width below which tables are squeezed to fit.
const maxTableWidth = 60

var (
	flagDB      string
	flagReset   bool
	flagRoster  string
	flagPreset  string
	flagPolicy  string
	flagSeed    int64
	flagVerbose bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run turns until the battle is over",
	Long: `Resolve turns against the database until fewer than two ships remain,
printing the surviving ships after every turn.

Flags override the matching environment variables.

Examples:
  fleetsim run
  fleetsim run --reset --preset demo
  fleetsim run --reset --roster ./my-roster.yaml --policy enemy`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagDB, "db", "", "Database URL (overrides DATABASE_URL)")
	runCmd.Flags().BoolVar(&flagReset, "reset", false, "Reset the roster before the first turn (overrides DB_RESET)")
	runCmd.Flags().StringVar(&flagRoster, "roster", "", "Path to a YAML roster file")
	runCmd.Flags().StringVar(&flagPreset, "preset", "", "Embedded roster preset ("+strings.Join(config.Presets(), ", ")+")")
	runCmd.Flags().StringVar(&flagPolicy, "policy", "", "Targeting policy ("+policyNames()+")")
	runCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	runCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every attack")
}

func runRun(cmd *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "fleetsim",
	})

	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal("invalid log level", "level", cfg.LogLevel, "error", err)
	}
	logger.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runBattle(ctx, cfg, logger); err != nil {
		logger.Error("battle failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies any flags that were set.
func loadConfig(cmd *cobra.Command) (config.Env, error) {
	cfg, err := config.ParseEnv()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DatabaseURL = flagDB
	}
	if flags.Changed("reset") {
		cfg.Reset = config.Switch(flagReset)
	}
	if flags.Changed("roster") {
		cfg.RosterPath = flagRoster
	}
	if flags.Changed("preset") {
		cfg.Preset = flagPreset
	}
	if flags.Changed("policy") {
		cfg.Policy = flagPolicy
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}

	return cfg, cfg.Validate()
}

func runBattle(ctx context.Context, cfg config.Env, logger *log.Logger) error {
	store, err := storage.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Reset {
		roster, err := config.LoadRoster(cfg.RosterPath, cfg.Preset)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
		if err := store.Reset(ctx, roster.Combat()); err != nil {
			return err
		}
		logger.Info("roster reset", "fleets", len(roster.Fleets), "ships", roster.Combat().ShipCount())
	}

	rng, err := random.New(cfg.Seed)
	if err != nil {
		return err
	}
	policy, err := registry.Create(cfg.Policy, registry.Deps{Roller: rng})
	if err != nil {
		return err
	}

	engine := combat.NewEngine(store, combat.EngineConfig{
		Policy: policy,
		Logger: logger.WithPrefix("fleetsim/combat"),
	})
	driver := sim.New(engine, store, sim.Config{
		Out:    os.Stdout,
		Logger: logger,
		Width:  tableWidth(),
	})

	summary, err := driver.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("battle over", "turns", summary.Turns, "survivors", len(summary.Survivors))
	return nil
}

// tableWidth squeezes tables on narrow terminals and leaves them natural otherwise.
func tableWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	if w, _, err := term.GetSize(fd); err == nil && w < maxTableWidth {
		return w
	}
	return 0
}

func policyNames() string {
	var names []string
	for _, p := range registry.List() {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
