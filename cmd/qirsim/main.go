// Command qirsim runs QIR programs on a state-vector simulator.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var rootCmd = &cobra.Command{
	Use:          "qirsim",
	Short:        "QIR interpreter on a state-vector simulator",
	Long:         `qirsim interprets textual QIR programs line by line against a full state-vector simulation.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = Version

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "configuration file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().IntP("qubits", "q", 10, "number of qubits in the register")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	atexit.Register(stop)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
