package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/voltring/voltring/pkg/widget"
)

// Version is overridden at build time.
var Version = "dev"

var (
	logLevel = "info"
	logFile  = ""
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voltring",
		Short: "voltring shows battery charge as an animated terminal gauge",
		Long: `voltring pins an animated radial battery gauge to the top-right corner
of your terminal. It polls the power supply once per second, eases the
displayed percentage toward each new reading, and pulses when you plug in.

Right-click the gauge (or press q / Esc) to dismiss it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runWidget()
		},
	}

	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", logLevel, "log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&logFile, "log-file", logFile, "append logs to this file instead of discarding them while the gauge is on screen")

	cmd.AddCommand(
		NewStatusCommand(),
		NewVersionCommand(),
	)

	return cmd
}

func runWidget() error {
	// The gauge owns the terminal while it runs; logs written to stderr
	// would be painted over, so they go to a file or nowhere.
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %v", err)
		}
		defer f.Close()
		logrus.SetOutput(f)
	} else {
		logrus.SetOutput(io.Discard)
	}

	w, err := widget.New()
	if err != nil {
		logrus.SetOutput(os.Stderr)
		return fmt.Errorf("failed to initialize the widget: %v", err)
	}
	return w.Run()
}
