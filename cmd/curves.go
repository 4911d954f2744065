package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"suppression/internal/report"
	"suppression/internal/session"
)

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "Print the stage and total gain curves without opening a window",
	Long: `Computes the same curves the window shows for the given slider positions
and writes them as a table, CSV, JSON or YAML.

Examples:
  suppression curves
  suppression curves --lengths 23,46,90 --format csv --output curves.csv`,
	RunE: runCurves,
}

func init() {
	addLengthsFlag(curvesCmd)
	curvesCmd.Flags().StringP("format", "f", string(report.FormatTable), "output format (table, csv, json, yaml)")
	curvesCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(curvesCmd)
}

func runCurves(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}
	opts, err := sessionOptions(cmd, appConfig)
	if err != nil {
		return err
	}
	s, err := session.New(opts, session.NopCanvas{})
	if err != nil {
		return err
	}
	log.Debug().Floats64("lengths_m", s.Lengths()).Str("format", string(format)).Msg("Computed curves")

	var w io.Writer = cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}
	return report.Write(w, report.FromSession(s), format)
}
