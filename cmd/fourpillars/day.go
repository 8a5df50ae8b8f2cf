package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zixuanlab/fourpillars/internal/calendar"
	"github.com/zixuanlab/fourpillars/internal/cli"
	"github.com/zixuanlab/fourpillars/internal/donggong"
)

func dayCmd() *cobra.Command {
	var hourFlag float64

	cmd := &cobra.Command{
		Use:   "day <date>",
		Short: "Rate a single day (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}

			eng, err := donggong.NewEngine(calendar.NewLunarGo())
			if err != nil {
				return err
			}

			var hour *float64
			if cmd.Flags().Changed("hour") {
				hour = &hourFlag
			}

			rec, err := eng.Rate(cmd.Context(), date, hour)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.TitleStyle.Render(args[0]))
			fmt.Fprintf(out, "pillar %s %s, lunar day %d, %s\n",
				cli.PillarStyle.Render(rec.Pillar.Chinese()), rec.Pillar, rec.LunarDay, rec.MoonPhase)
			fmt.Fprintln(out, renderVerdict(rec))
			if rec.Activities != nil {
				fmt.Fprintf(out, "favorable: %s\n", strings.Join(rec.Activities.Recommended, ", "))
				fmt.Fprintf(out, "avoid:     %s\n", strings.Join(rec.Activities.Avoid, ", "))
				fmt.Fprintln(out, cli.SubtleStyle.Render(rec.Activities.DescriptionEN))
				fmt.Fprintln(out, cli.SubtleStyle.Render(rec.Activities.DescriptionZH))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&hourFlag, "hour", 0, "evaluate a specific decimal hour (e.g. 14.5)")
	return cmd
}
