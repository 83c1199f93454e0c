package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/solid/internal/cliconfig"
	"github.com/bft-labs/solid/internal/domain"
	"github.com/bft-labs/solid/internal/ocp"
	"github.com/bft-labs/solid/pkg/log"
	"github.com/bft-labs/solid/pkg/solid"
)

const longHelp = `Run the SOLID design principle examples.

Each principle comes as a pair: a "before" design that violates it and an
"after" design that fixes it. Pick demos by name or run them all:

  srp  Single Responsibility
  ocp  Open/Closed
  lsp  Liskov Substitution
  isp  Interface Segregation
  dip  Dependency Inversion

Without any selected demo the command does nothing.`

var exampleUsage = strings.TrimSpace(`
  solid --demo dip
  solid --all --variant both
  solid --config $HOME/.solid/config.toml --watch
  solid area circle 2
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		cliconfig.Logger(os.Stderr, "error").Error("solid", log.Err(err))
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "solid",
		Short:         "Run before/after examples of the SOLID principles",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			load := func() (cliconfig.Config, error) {
				return loadConfig(cfg, cfgFile, changed)
			}

			resolved, err := load()
			if err != nil {
				return err
			}

			logger := cliconfig.Logger(stderr, resolved.LogLevel)
			logger.Debug("configuration",
				log.Any("demos", resolved.Demos),
				log.String("variant", resolved.Variant),
				log.Bool("watch", resolved.Watch))

			catalog := solid.New(solid.WithOutput(stdout), solid.WithLogger(logger))
			if err := runDemos(catalog, resolved); err != nil {
				return err
			}

			if !resolved.Watch {
				return nil
			}
			if cfgFile == "" {
				return fmt.Errorf("watch: no config file to watch")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := cliconfig.NewWatcher(cfgFile, resolved.WatchDebounce, func(context.Context) {
				next, err := load()
				if err != nil {
					logger.Error("reload config", log.Err(err))
					return
				}
				if err := runDemos(catalog, next); err != nil {
					logger.Error("run demos", log.Err(err))
				}
			}, logger)
			return w.Run(ctx)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file, .toml or .yaml (default: $HOME/.solid/config.toml)")
	root.Flags().StringSliceVar(&cfg.Demos, "demo", cfg.Demos, "demos to run, comma separated (srp, ocp, lsp, isp, dip)")
	root.Flags().BoolVar(&cfg.All, "all", cfg.All, "run every demo")
	root.Flags().StringVar(&cfg.Variant, "variant", cfg.Variant, "design to run: before, after or both")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run demos whenever the config file changes")
	root.Flags().DurationVar(&cfg.WatchDebounce, "watch-debounce", cfg.WatchDebounce, "quiet period before re-running after a change")

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newListCmd(stdout), newAreaCmd(stdout, stderr))
	return root
}

// loadConfig layers file, env and flags (in increasing precedence) over base.
func loadConfig(base cliconfig.Config, cfgFile string, changed map[string]bool) (cliconfig.Config, error) {
	cfg := base
	cfg.Demos = append([]string(nil), base.Demos...)

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runDemos(c *solid.Catalog, cfg cliconfig.Config) error {
	variant, err := solid.ParseVariant(cfg.Variant)
	if err != nil {
		return err
	}
	return c.Run(variant, cfg.Demos...)
}

func newListCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := solid.New()
			for _, name := range c.Names() {
				d, err := c.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout, "%-4s %s\n", name, d.Principle())
			}
			return nil
		},
	}
}

func newAreaCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "area <shape> <dimension>...",
		Short: "Compute the area of a shape",
		Long: "Compute the area of a shape. Known shapes: " + strings.Join(ocp.ShapeKinds(), ", ") + ".\n" +
			"Dimensions are not validated, so negative values are accepted as-is.",
		Example: "  solid area rectangle 3 4\n  solid area rectangle -3 4\n  solid area circle 2",
		// Flag parsing would read negative dimensions as shorthand flags.
		DisableFlagParsing: true,
		Args:               cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-h" || args[0] == "--help" {
				return cmd.Help()
			}
			logger := cliconfig.Logger(stderr, os.Getenv(cliconfig.EnvPrefix+"LOG_LEVEL"))

			dims := make([]float64, 0, len(args)-1)
			for _, a := range args[1:] {
				f, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("parse dimension %q: %w", a, err)
				}
				if math.IsNaN(f) || math.IsInf(f, 0) {
					return fmt.Errorf("%w: dimension %q is not finite", domain.ErrInvalidDimensions, a)
				}
				dims = append(dims, f)
			}
			shape, err := ocp.ParseShape(args[0], dims...)
			if err != nil {
				return err
			}
			area := ocp.ComputeArea(shape)
			logger.Debug("area computed", log.String("shape", args[0]), log.Any("dims", dims), log.Any("area", area))
			fmt.Fprintf(stdout, "%.3f\n", area)
			return nil
		},
	}
}
