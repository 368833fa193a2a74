package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/i18ntypes/am"
	"github.com/teranos/i18ntypes/errors"
)

func (a *app) newConfigCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config [locales-dir] [output-file]",
		Short: "Show the effective configuration",
		Long: `Print the configuration after defaults, i18ntypes.toml, I18NTYPES_* variables,
flags and positional arguments have been applied.

The TOML output can be saved as i18ntypes.toml.

Examples:
  i18ntypes config                  # TOML
  i18ntypes config --format json    # JSON
  i18ntypes config > i18ntypes.toml # Start a project config`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := marshalConfig(a.cfg, format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")
	return cmd
}

func marshalConfig(cfg *am.Config, format string) ([]byte, error) {
	switch format {
	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to TOML")
		}
		return append([]byte("# i18ntypes configuration\n"), data...), nil

	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to JSON")
		}
		return append(data, '\n'), nil

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to YAML")
		}
		return append([]byte("# i18ntypes configuration\n"), data...), nil

	default:
		return nil, errors.NewInvalidRequestError("unsupported format: %s (supported: toml, json, yaml)", format)
	}
}
