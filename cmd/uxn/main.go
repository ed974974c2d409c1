// Command uxn loads a raw uxn ROM file and runs it against a host Device
// providing Console and System ports (SPEC_FULL.md §1): the minimal CLI
// entry point a repository like this ships, not the uxntal assembler
// (spec.md §1, §6 keep that out of scope).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uxn"
	"uxn/internal/uxnlog"
	"uxn/varvara"
)

var (
	verbose  bool
	headless bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "uxn <rom>",
		Short: "Run a uxn ROM",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose debug logging")
	rootCmd.Flags().BoolVar(&headless, "headless", false, "run without reading from stdin")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	uxnlog.Init(verbose)
	logger := uxnlog.L()

	rom, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read rom: %w", err)
	}

	exitCode, runErr := runROM(rom, logger)
	if runErr != nil {
		return runErr
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// runROM drives a loaded ROM to completion and reports the exit code
// .System/state requested, if any. Split out from run so every deferred
// cleanup (stdin restore, clock goroutine teardown) runs before the
// process actually exits.
func runROM(rom []byte, logger *uxnlog.Logger) (int, error) {
	cpu := uxn.NewWithROM(rom)
	device := varvara.NewVarvara(os.Stdout, logger)
	defer device.Close()
	cpu.SetDevice(device)

	var host *varvara.ConsoleInputHost
	if !headless {
		host = varvara.NewConsoleInputHost(device.Console)
		if err := host.Start(); err != nil {
			logger.Warnw("console input disabled", "err", err)
			host = nil
		}
	}
	if host != nil {
		defer host.Stop()
	}

	cpu.ExecuteUntilExit()

	if device.System.ExitRequested() {
		return int(device.System.ExitCode()), nil
	}
	return 0, nil
}
