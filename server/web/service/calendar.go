package service

import (
	"fmt"
	"sort"
	"time"

	"outreach_web/server/web/domain"
)

// CalendarView selects the window FilterScheduled applies around the
// anchor date.
type CalendarView string

const (
	ViewDay   CalendarView = "day"
	ViewWeek  CalendarView = "week"
	ViewMonth CalendarView = "month"
)

const scheduledDateLayout = "2006-01-02"

// FilterScheduled returns the scheduled emails whose date falls inside the
// view window containing anchor (the same day, the Sunday through Saturday
// week, or the calendar month), sorted ascending by (date, time). Entries
// with unparseable dates are dropped.
func FilterScheduled(emails []domain.ScheduledEmail, view CalendarView, anchor time.Time) ([]domain.ScheduledEmail, error) {
	start, end, err := viewWindow(view, anchor)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.ScheduledEmail, 0, len(emails))
	for _, email := range emails {
		date, err := time.ParseInLocation(scheduledDateLayout, email.ScheduledDate, anchor.Location())
		if err != nil {
			continue
		}
		if date.Before(start) || !date.Before(end) {
			continue
		}
		filtered = append(filtered, email)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].ScheduledDate != filtered[j].ScheduledDate {
			return filtered[i].ScheduledDate < filtered[j].ScheduledDate
		}
		return filtered[i].ScheduledTime < filtered[j].ScheduledTime
	})
	return filtered, nil
}

// viewWindow returns the half-open [start, end) range for the view.
func viewWindow(view CalendarView, anchor time.Time) (time.Time, time.Time, error) {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	switch view {
	case ViewDay:
		return day, day.AddDate(0, 0, 1), nil
	case ViewWeek:
		sunday := day.AddDate(0, 0, -int(day.Weekday()))
		return sunday, sunday.AddDate(0, 0, 7), nil
	case ViewMonth:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return first, first.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown calendar view %q", view)
	}
}
