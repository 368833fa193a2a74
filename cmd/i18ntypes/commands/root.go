package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/teranos/i18ntypes/am"
	"github.com/teranos/i18ntypes/errors"
	"github.com/teranos/i18ntypes/locale"
	"github.com/teranos/i18ntypes/logger"
	"github.com/teranos/i18ntypes/typegen"
	"github.com/teranos/i18ntypes/watch"
)

// flagBindings maps config keys to the flags that override them
var flagBindings = map[string]string{
	"watch.enabled":            "watch",
	"watch.debounce_ms":        "debounce",
	"locales.order":            "order",
	"output.default_namespace": "default-ns",
	"output.modules":           "module",
	"log.json":                 "json-logs",
}

// app carries the configuration resolved before each command runs
type app struct {
	cfg   *am.Config
	quiet bool
}

// NewRootCmd builds the i18ntypes command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "i18ntypes [locales-dir] [output-file]",
		Short: "Generate TypeScript declarations for i18next translation keys",
		Long: `i18ntypes scans a directory of <namespace>.json translation files and writes
an i18n.d.ts describing every translation key.

The declaration file contains:
  - <Namespace>Keys: every 'namespace:dot.path' key of one file
  - TranslationKeys: the union of all namespace key types
  - NamespaceKeys<'ns'>: lookup from namespace name to its key type
  - CustomTypeOptions augmentations for i18next and react-i18next

Configuration sources (in order of precedence):
  1. Positional arguments and flags
  2. Environment variables (I18NTYPES_* prefix)
  3. i18ntypes.toml in the working directory or a parent
  4. Default values

Examples:
  i18ntypes                                   # src/locale/ru -> src/lib/i18n/i18n.d.ts
  i18ntypes locales/en types/i18n.d.ts        # Explicit paths
  i18ntypes --watch                           # Regenerate on every .json change
  i18ntypes check                             # Fail if i18n.d.ts is out of date`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd)
		},
	}

	cmd.SetGlobalNormalizationFunc(normalizeFlagName)

	pf := cmd.PersistentFlags()
	pf.CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	pf.BoolP("quiet", "q", false, "Only report warnings and errors")
	pf.Bool("json-logs", false, "Write logs as JSON")
	pf.String("order", am.OrderSorted, "Locale file order: sorted or listing")
	pf.String("default-ns", "", "Namespace declared as defaultNS (default: first namespace)")
	pf.StringSlice("module", nil, "Module to augment with CustomTypeOptions (repeatable, default: i18next, react-i18next)")

	cmd.Flags().BoolP("watch", "w", false, "Regenerate whenever a locale file changes")
	cmd.Flags().Int("debounce", 0, "Watch mode: coalesce changes within this many milliseconds")

	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(a.newCheckCmd())
	cmd.AddCommand(a.newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// normalizeFlagName accepts --w as a long form of --watch
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "w" {
		name = "watch"
	}
	return pflag.NormalizedName(name)
}

// setup resolves configuration and initializes logging
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	a.cfg = cfg

	verbosity, _ := cmd.Flags().GetCount("verbose")
	if a.quiet, _ = cmd.Flags().GetBool("quiet"); a.quiet {
		verbosity = logger.VerbosityQuiet
	}
	logger.SetTheme(cfg.Log.Theme)
	if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	return nil
}

// loadConfig layers flags and positional arguments over the am configuration
func loadConfig(cmd *cobra.Command, args []string) (*am.Config, error) {
	v, err := am.GetViper()
	if err != nil {
		return nil, err
	}

	for key, name := range flagBindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "failed to bind --%s", name)
			}
		}
	}

	cfg, err := am.LoadWithViper(v)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Locales.Dir = args[0]
	}
	if len(args) > 1 {
		cfg.Output.File = args[1]
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.WithHint(err, "check i18ntypes.toml, I18NTYPES_* variables and flags")
	}
	return cfg, nil
}

func generateOptions(cfg *am.Config) (typegen.Options, error) {
	order, err := locale.ParseOrder(cfg.Locales.Order)
	if err != nil {
		return typegen.Options{}, err
	}
	return typegen.Options{
		DefaultNamespace: cfg.Output.DefaultNamespace,
		Modules:          cfg.Output.Modules,
		Order:            order,
	}, nil
}

func (a *app) runGenerate(cmd *cobra.Command) error {
	opts, err := generateOptions(a.cfg)
	if err != nil {
		return err
	}

	// The first run is not guarded: a broken locale file fails startup
	if err := a.generate(cmd, opts); err != nil {
		return err
	}

	if !a.cfg.Watch.Enabled {
		return nil
	}
	return a.watch(cmd, opts)
}

func (a *app) generate(cmd *cobra.Command, opts typegen.Options) error {
	result, err := typegen.Generate(a.cfg.Locales.Dir, a.cfg.Output.File, opts)
	if err != nil {
		return err
	}
	if !result.Written {
		return nil
	}

	out := cmd.OutOrStdout()
	for _, ns := range result.Skipped {
		fmt.Fprintln(out, pterm.Warning.Sprintf("Skipped namespace %q: its type name is already taken", ns))
	}
	if a.quiet {
		return nil
	}
	fmt.Fprintln(out, pterm.Success.Sprintf("i18n types generated: %s (%d namespaces, default %q)",
		result.OutputFile, len(result.Namespaces), result.DefaultNamespace))
	return nil
}

func (a *app) watch(cmd *cobra.Command, opts typegen.Options) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(a.cfg.Locales.Dir, func(string) error {
		return a.generate(cmd, opts)
	}, watch.WithDebounce(time.Duration(a.cfg.Watch.DebounceMS)*time.Millisecond))
	if err != nil {
		return err
	}
	defer w.Close()

	if !a.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), pterm.Info.Sprintf("Watching %s for changes (Ctrl+C to stop)", a.cfg.Locales.Dir))
	}
	return w.Run(ctx)
}
