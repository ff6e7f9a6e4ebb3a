package search

import "time"

// PublishDateFilter narrows results to postings published after a lower
// bound computed relative to the current time.
type PublishDateFilter string

// Supported publish-date filters.
const (
	FilterNone       PublishDateFilter = "none"
	FilterLastHour   PublishDateFilter = "last-hour"
	FilterToday      PublishDateFilter = "today"
	FilterLast7Days  PublishDateFilter = "last-7-days"
	FilterLast30Days PublishDateFilter = "last-30-days"
)

// LowerBound resolves the filter against now. The second return value is
// false when no filter is selected and no query parameter should be sent.
func (f PublishDateFilter) LowerBound(now time.Time) (time.Time, bool) {
	switch f {
	case FilterLastHour:
		return now.Add(-time.Hour), true
	case FilterToday:
		year, month, day := now.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, now.Location()), true
	case FilterLast7Days:
		return now.AddDate(0, 0, -7), true
	case FilterLast30Days:
		return now.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}
