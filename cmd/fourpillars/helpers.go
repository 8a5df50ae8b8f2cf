package main

import (
	"fmt"
	"time"

	"github.com/zixuanlab/fourpillars/internal/common"
	"github.com/zixuanlab/fourpillars/internal/model"
)

// parseDate accepts an ISO calendar date.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, common.NewUserError(
			fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s), common.ErrInvalidDate)
	}
	return t, nil
}

// parseClock accepts a 24h HH:MM time of day.
func parseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, common.NewUserError(
			fmt.Sprintf("invalid time %q, expected HH:MM", s), common.ErrInvalidTime)
	}
	return t.Hour(), t.Minute(), nil
}

func parseGender(s string) (model.Gender, error) {
	switch model.Gender(s) {
	case model.Male:
		return model.Male, nil
	case model.Female:
		return model.Female, nil
	}
	return "", common.NewUserError(
		fmt.Sprintf("invalid gender %q, expected male or female", s), common.ErrInvalidGender)
}
