package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/zixuanlab/fourpillars/internal/calendar"
	"github.com/zixuanlab/fourpillars/internal/cli"
	"github.com/zixuanlab/fourpillars/internal/common"
	"github.com/zixuanlab/fourpillars/internal/engine"
	"github.com/zixuanlab/fourpillars/internal/model"
)

func calendarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar <year> <month>",
		Short: "Rate every day of a month with the Dong Gong tables",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("invalid year %q", args[0]), common.ErrInvalidDate)
			}
			month, err := strconv.Atoi(args[1])
			if err != nil || month < 1 || month > 12 {
				return common.NewUserError(fmt.Sprintf("invalid month %q", args[1]), common.ErrInvalidDate)
			}

			builder, err := engine.NewCalendarBuilder(calendar.NewLunarGo())
			if err != nil {
				return err
			}
			cal, err := builder.Month(cmd.Context(), year, time.Month(month))
			if err != nil {
				return err
			}

			renderCalendar(cmd, cal)
			return nil
		},
	}
}

func renderCalendar(cmd *cobra.Command, cal *engine.MonthCalendar) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, cli.TitleStyle.Render(fmt.Sprintf("%s %d", cal.Month, cal.Year)))
	fmt.Fprintf(out, "%d days, the 1st is a %s\n", cal.DayCount, cal.FirstWeekday)
	for _, span := range cal.Spans {
		leap := ""
		if span.Leap {
			leap = " (leap)"
		}
		fmt.Fprintln(out, cli.SubtleStyle.Render(
			fmt.Sprintf("lunar year %d month %d%s", span.Year, span.Month, leap)))
	}
	fmt.Fprintln(out)

	for i, day := range cal.Days {
		fmt.Fprintf(out, "%2d  %s %-10s", i+1,
			cli.PillarStyle.Render(day.Pillar.Chinese()), day.Pillar)
		fmt.Fprint(out, renderVerdict(day))
		fmt.Fprintln(out)
	}
}

func renderVerdict(day model.DayRecord) string {
	if day.Rating == nil {
		return cli.SubtleStyle.Render("  (outside table coverage)")
	}

	s := fmt.Sprintf("  %s %s", cli.RatingStyle(day.Rating.Value).Render(day.Rating.Symbol), day.Rating.Label)
	if day.Officer != nil {
		s += fmt.Sprintf("  officer %s", *day.Officer)
	}
	if day.Forbidden != nil {
		s += cli.DireStyle.Render(fmt.Sprintf("  forbidden %.2f-%.2f (%s)",
			day.Forbidden.Start, day.Forbidden.End, day.Forbidden.TermName))
	}
	if day.Consult != nil {
		s += cli.WarningStyle.Render(fmt.Sprintf("  consult: %s", day.Consult.Reason))
	}
	s += cli.SubtleStyle.Render("  " + day.MoonPhase)
	return s
}
