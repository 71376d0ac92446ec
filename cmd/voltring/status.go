package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/voltring/voltring/pkg/sensor"
)

var bold = color.New(color.Bold).SprintFunc()

func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the current power-supply reading and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := sensor.Read()
			if err != nil {
				return fmt.Errorf("failed to read power status: %v", err)
			}

			cmd.Println(bold("Power supply:"))
			cmd.Printf("  Charge: %s\n", chargeText(st))
			cmd.Printf("  Power:  %s\n", pluggedText(st.Plugged))
			return nil
		},
	}
}

func chargeText(st sensor.Status) string {
	text := fmt.Sprintf("%d%%", st.Percent)
	switch {
	case st.Plugged:
		return color.GreenString(text)
	case st.Percent < 20:
		return color.RedString(text)
	case st.Percent < 50:
		return color.YellowString(text)
	}
	return color.CyanString(text)
}

func pluggedText(plugged bool) string {
	if plugged {
		return color.GreenString("plugged in")
	}
	return color.YellowString("on battery")
}
