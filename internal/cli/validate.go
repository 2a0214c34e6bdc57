package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/config"
	"github.com/matzehuels/techradar/pkg/radar/layout"
	"github.com/matzehuels/techradar/pkg/radar/partition"
)

// validateCommand checks configurations without laying them out.
func (c *CLI) validateCommand() *cobra.Command {
	var (
		flags  radarFlags
		schema bool
	)

	cmd := &cobra.Command{
		Use:   "validate <config>...",
		Short: "Check configuration files",
		Long: `Check configuration files.

Each file is checked against the configuration schema and the layout
rules (quadrant count, ring radii, legend settings). Entries that a
layout pass would skip are listed as warnings. Use --schema to print the
JSON schema instead.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if schema {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if schema {
				_, err := cmd.OutOrStdout().Write(config.Schema())
				return err
			}
			invalid := 0
			for _, path := range args {
				if err := validateFile(cmd, path, &flags); err != nil {
					printError("%s: %v", path, err)
					invalid++
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d configuration(s) invalid", invalid, len(args))
			}
			return nil
		},
	}

	flags.bind(cmd, false)
	cmd.Flags().BoolVar(&schema, "schema", false, "print the configuration JSON schema")
	return cmd
}

func validateFile(cmd *cobra.Command, path string, flags *radarFlags) error {
	cfg, err := loadConfig(cmd, path, flags)
	if err != nil {
		return err
	}
	if err := layout.Validate(cfg); err != nil {
		return err
	}

	kept, dropped := partition.Filter(cfg.Entries, len(cfg.Quadrants), len(cfg.Rings))
	printSuccess("%s", StyleHighlight.Render(path))
	printKeyValue("quadrants", fmt.Sprint(len(cfg.Quadrants)))
	printKeyValue("rings", fmt.Sprint(len(cfg.Rings)))
	printKeyValue("entries", fmt.Sprintf("%d placed, %d skipped", len(kept), len(dropped)))
	printKeyValue("fingerprint", config.Fingerprint(cfg))
	for _, d := range dropped {
		printWarning("%s", d)
	}
	return nil
}
