package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zixuanlab/fourpillars/internal/calendar"
	"github.com/zixuanlab/fourpillars/internal/chart"
	"github.com/zixuanlab/fourpillars/internal/cli"
	"github.com/zixuanlab/fourpillars/internal/engine"
)

func chartCmd() *cobra.Command {
	var (
		birthStr      string
		timeStr       string
		genderStr     string
		analysisStr   string
		analysisTime  string
		includeAnnual bool
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Compute a Four Pillars chart with luck progression and interactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			birthDate, err := parseDate(birthStr)
			if err != nil {
				return err
			}
			gender, err := parseGender(genderStr)
			if err != nil {
				return err
			}

			in := chart.BirthInput{
				Year:   birthDate.Year(),
				Month:  birthDate.Month(),
				Day:    birthDate.Day(),
				Gender: gender,
			}
			if timeStr != "" {
				if in.Hour, in.Minute, err = parseClock(timeStr); err != nil {
					return err
				}
				in.HasTime = true
			}

			req := engine.AnalysisRequest{Birth: in, IncludeAnnual: includeAnnual}
			if analysisStr != "" {
				analysisDate, err := parseDate(analysisStr)
				if err != nil {
					return err
				}
				req.Analysis = engine.AnalysisInstant{
					Year:    analysisDate.Year(),
					Month:   analysisDate.Month(),
					Day:     analysisDate.Day(),
					HasDate: true,
				}
				if analysisTime != "" {
					if req.Analysis.Hour, req.Analysis.Minute, err = parseClock(analysisTime); err != nil {
						return err
					}
					req.Analysis.HasTime = true
				}
			}

			analyzer := engine.NewAnalyzer(calendar.NewLunarGo())
			result, err := analyzer.Analyze(cmd.Context(), req)
			if err != nil {
				return err
			}

			renderAnalysis(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&birthStr, "birth", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeStr, "time", "", "birth time (HH:MM, 24h)")
	cmd.Flags().StringVar(&genderStr, "gender", "", "gender (male or female)")
	cmd.Flags().StringVar(&analysisStr, "analysis", "", "analysis date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&analysisTime, "analysis-time", "", "analysis time (HH:MM, 24h)")
	cmd.Flags().BoolVar(&includeAnnual, "include-annual", true, "include the annual luck pillar in interaction analysis")
	_ = cmd.MarkFlagRequired("birth")
	_ = cmd.MarkFlagRequired("gender")

	return cmd
}

func renderAnalysis(cmd *cobra.Command, result *engine.AnalysisResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, cli.TitleStyle.Render("Natal Chart"))
	var natal strings.Builder
	for i, pv := range result.Natal {
		if i > 0 {
			natal.WriteByte('\n')
		}
		qi := make([]string, 0, len(pv.HiddenQi))
		for _, q := range pv.HiddenQi {
			qi = append(qi, fmt.Sprintf("%s %d%%", q.Stem, q.Percent))
		}
		fmt.Fprintf(&natal, "%-8s %s  %-14s %s", pv.Slot,
			cli.PillarStyle.Render(pv.Pillar.Chinese()), pv.Pillar,
			cli.SubtleStyle.Render(strings.Join(qi, ", ")))
	}
	fmt.Fprintln(out, cli.BoxStyle.Render(natal.String()))

	if result.Luck != nil {
		lp := result.Luck.Pillar
		regime := "Da Yun"
		if lp.Childhood {
			regime = "Xiao Yun"
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.TitleStyle.Render("Active Luck Pillar"))
		fmt.Fprintf(out, "  %s %s (%s, ages %d-%d, %s to %s)\n",
			cli.PillarStyle.Render(lp.Pillar.Chinese()), lp.Pillar, regime,
			lp.StartAge, lp.EndAge,
			result.Luck.RangeFrom.Format("2006-01-02"),
			result.Luck.RangeTo.Format("2006-01-02"))
	}

	if len(result.XiaoYun) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.TitleStyle.Render("Childhood Luck (Xiao Yun)"))
		for _, lp := range result.XiaoYun {
			fmt.Fprintf(out, "  age %2d  %s %s\n", lp.StartAge,
				cli.PillarStyle.Render(lp.Pillar.Chinese()), lp.Pillar)
		}
	}

	if len(result.DaYun) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.TitleStyle.Render("Luck Progression (Da Yun)"))
		for _, lp := range result.DaYun {
			fmt.Fprintf(out, "  age %2d  %s %s\n", lp.StartAge,
				cli.PillarStyle.Render(lp.Pillar.Chinese()), lp.Pillar)
		}
	}

	for _, pv := range result.Cycle {
		if pv.Disabled {
			fmt.Fprintf(out, "  %-8s %s %s\n", pv.Slot, pv.Pillar,
				cli.SubtleStyle.Render("(excluded from analysis)"))
		}
	}

	if len(result.Interactions) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.TitleStyle.Render("Interactions"))
		for _, in := range result.Interactions {
			var parts []string
			for _, b := range in.Branches {
				parts = append(parts, b.String())
			}
			for _, s := range in.Stems {
				parts = append(parts, s.String())
			}
			line := fmt.Sprintf("  %-20s %-24s -> %-6s score %.1f",
				in.Category, strings.Join(parts, "+"), in.Into, in.Score)
			if len(in.Missing) > 0 {
				missing := make([]string, 0, len(in.Missing))
				for _, b := range in.Missing {
					missing = append(missing, b.String())
				}
				line += cli.SubtleStyle.Render(" missing " + strings.Join(missing, ","))
			}
			fmt.Fprintln(out, line)
		}
	}

	if len(result.Transformations) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.TitleStyle.Render("Effective Elements"))
		for branch, elem := range result.Transformations {
			fmt.Fprintf(out, "  %-5s -> %s\n", branch, cli.AuspiciousStyle.Render(elem.String()))
		}
	}
}
