package attendance

import (
	"math"
	"sort"
)

// The report builders are pure functions over a snapshot of active records so
// the aggregation rules can be exercised without a database.

func buildDailyStats(date string, records []GetListResponse) DailyStats {
	stats := DailyStats{Date: date}

	var arrivals, departures []string
	for _, r := range records {
		if r.CheckInTime != nil {
			stats.TotalPresent++
			arrivals = append(arrivals, *r.CheckInTime)
		}
		if r.CheckOutTime != nil {
			stats.TotalCheckedOut++
			departures = append(departures, *r.CheckOutTime)
		}
		if r.CheckInTime != nil && r.CheckOutTime == nil {
			stats.StillPresent++
		}
	}

	stats.AverageArrivalTime = averageClock(arrivals)
	stats.AverageDepartureTime = averageClock(departures)
	stats.AttendanceRate = rate(stats.TotalPresent, len(records))

	return stats
}

func buildWeeklyBreakdown(records []GetListResponse) []DayBreakdown {
	byDate := map[string]*DayBreakdown{}
	for _, r := range records {
		day, ok := byDate[r.Date]
		if !ok {
			day = &DayBreakdown{Date: r.Date}
			byDate[r.Date] = day
		}
		day.Records = append(day.Records, r)
		if r.CheckInTime != nil {
			day.Present++
		}
		if r.CheckOutTime != nil {
			day.CheckedOut++
		}
	}

	breakdown := make([]DayBreakdown, 0, len(byDate))
	for _, day := range byDate {
		breakdown = append(breakdown, *day)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Date < breakdown[j].Date
	})

	return breakdown
}

func buildChildSummary(childID int, period Period, records []GetListResponse) ChildReportResponse {
	summary := ChildReportResponse{
		ChildID: childID,
		Period:  period,
		Records: records,
	}

	summary.TotalDays = len(records)
	for _, r := range records {
		if r.CheckInTime != nil {
			summary.PresentDays++
		}
	}
	summary.AbsentDays = summary.TotalDays - summary.PresentDays
	summary.AttendanceRate = rate(summary.PresentDays, summary.TotalDays)

	return summary
}

func buildDailyCounts(date string, records []GetListResponse) StatsResponse {
	counts := StatsResponse{
		Date:         date,
		TotalRecords: len(records),
	}

	for _, r := range records {
		switch {
		case r.CheckInTime != nil && r.CheckOutTime == nil:
			counts.CheckedIn++
			counts.StillPresent++
		case r.CheckInTime != nil:
			counts.CheckedIn++
		default:
			counts.Absent++
		}
		if r.CheckOutTime != nil {
			counts.CheckedOut++
		}
	}

	return counts
}

// averageClock returns the mean of the given HH:MM:SS values, nil when there
// is nothing to average.
func averageClock(times []string) *string {
	var sum, n int
	for _, value := range times {
		if seconds, ok := clockToSeconds(value); ok {
			sum += seconds
			n++
		}
	}
	if n == 0 {
		return nil
	}

	avg := secondsToClock(sum / n)
	return &avg
}

// rate is part/total as a percentage rounded to two decimals, zero when total
// is zero.
func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*100*100) / 100
}
