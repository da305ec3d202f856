// Package main provides the neuroncore CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const version = "v0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	if len(args) == 0 {
		usage(stdout)
		return 2
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "neuroncore %s\n", version)
		return 0
	case "train":
		err = runTrain(args[1:], stdout, logger)
	case "score":
		err = runScore(args[1:], stdin, stdout, logger)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}

	if err != nil {
		logger.Error("command failed", "command", args[0], "err", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "neuroncore - minimal automatic differentiation engine")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  train      Train the 2-3-1 regression network")
	fmt.Fprintln(w, "  score      Score numbers from stdin or a sensor replay for anomalies")
}
