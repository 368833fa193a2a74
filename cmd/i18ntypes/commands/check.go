package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/i18ntypes/errors"
	"github.com/teranos/i18ntypes/typegen"
)

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [locales-dir] [output-file]",
		Short: "Check that the declaration file is up to date",
		Long: `Render the declarations in memory and compare them with the existing file.
Nothing is written.

Exit codes:
  0 - Declarations are up to date
  1 - Declarations are missing or out of date (diff shown), or an error occurred

Examples:
  i18ntypes check                             # Default paths
  i18ntypes check locales/en types/i18n.d.ts  # Explicit paths`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd)
		},
	}
}

func (a *app) runCheck(cmd *cobra.Command) error {
	opts, err := generateOptions(a.cfg)
	if err != nil {
		return err
	}

	result, err := typegen.Check(a.cfg.Locales.Dir, a.cfg.Output.File, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case result.UpToDate:
		fmt.Fprintln(out, pterm.Success.Sprintf("i18n types are up to date"))
		return nil

	case result.Missing:
		return errors.WithHint(
			errors.Newf("%s does not exist", result.OutputFile),
			"run i18ntypes to generate it",
		)

	default:
		fmt.Fprintln(out, pterm.Warning.Sprintf("i18n types are out of date"))
		fmt.Fprint(out, result.Diff)
		return errors.WithHint(
			errors.Newf("%s is out of date", result.OutputFile),
			"run i18ntypes to regenerate it",
		)
	}
}
