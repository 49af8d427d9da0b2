package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/qirsim/api"
	"github.com/sarchlab/qirsim/config"
	"github.com/sarchlab/qirsim/qir"
	"github.com/sarchlab/qirsim/report"
	"github.com/sarchlab/qirsim/verify"
)

var runCmd = &cobra.Command{
	Use:   "run <file.ll>",
	Short: "Run a QIR program and print the resulting distribution",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgram,
}

func init() {
	runCmd.Flags().Int("shots", 1, "number of independent runs")
	runCmd.Flags().Uint64("seed", 0, "random seed, 0 for a random seed")
	runCmd.Flags().Int("max-steps", 0, "maximum lines executed per run, 0 for no limit")
	runCmd.Flags().StringP("format", "f", report.FormatTable, "output format (table|text|yaml|msgpack|cbor)")
	runCmd.Flags().IntP("jobs", "j", 0, "shots run in parallel")
	runCmd.Flags().Bool("tick", false, "run on the akita tick engine, one line per cycle")
	runCmd.Flags().Bool("lint", false, "lint the program before running it")
	runCmd.Flags().Bool("vars", false, "print the variable table after a single run")
}

func runProgram(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	fmt.Fprintf(os.Stderr, "Loading QIR file: %s\n", path)

	lines, err := qir.ReadLinesFile(path)
	if err != nil {
		return err
	}

	if lint, _ := cmd.Flags().GetBool("lint"); lint {
		printIssues(cmd.ErrOrStderr(), verify.RunLint(lines, &verify.ArchInfo{Qubits: cfg.Qubits}))
	}

	driver := cfg.DriverBuilder().Build("Driver")
	if err := driver.LoadLines(lines); err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if cfg.Shots > 1 {
		res, err := driver.RunShots(cmd.Context(), cfg.Shots)
		if err != nil {
			return err
		}

		if report.IsEncoding(cfg.Format) {
			return report.Encode(out, cfg.Format, res)
		}

		return report.WriteHistogram(out, res.Histogram)
	}

	res, err := driver.Run(cmd.Context())
	if err != nil {
		return err
	}

	return printResult(cmd, cfg, res)
}

func printResult(cmd *cobra.Command, cfg config.Config, res *api.Result) error {
	out := cmd.OutOrStdout()

	if report.IsEncoding(cfg.Format) {
		return report.Encode(out, cfg.Format, res)
	}

	dist := report.Distribution(res.State, res.NumQubits, cfg.Threshold)

	var err error
	if cfg.Format == report.FormatText {
		err = report.WriteText(out, dist)
	} else {
		err = report.WriteTable(out, dist)
	}
	if err != nil {
		return err
	}

	if vars, _ := cmd.Flags().GetBool("vars"); vars {
		return report.WriteVars(out, res.Vars)
	}

	return nil
}
