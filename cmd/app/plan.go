package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/intervals/internal/config"
	"github.com/akyairhashvil/intervals/internal/plan"
	"github.com/akyairhashvil/intervals/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPlanCmd(v *viper.Viper, configFile *string) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the interval plan for the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(format)
			settings, err := config.Load(v, *configFile)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := plan.Write(&buf, plan.Build(settings.Configuration), format); err != nil {
				return err
			}

			if output == "" && format == plan.FormatPDF {
				output = filepath.Join(util.ReportsDir(config.AppName), "plan.pdf")
			}
			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write plan: %w", err)
			}
			written := output
			if absPath, err := filepath.Abs(output); err == nil {
				written = absPath
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Plan written: %s\n", written)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", plan.FormatText, "output format (text, toml, pdf)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
