package attendance

import "testing"

func record(day string, checkIn, checkOut *string) GetListResponse {
	return GetListResponse{
		Date:         day,
		CheckInTime:  checkIn,
		CheckOutTime: checkOut,
	}
}

func TestBuildDailyStats(t *testing.T) {
	day := "2025-09-19"
	records := []GetListResponse{
		record(day, strPtr("08:30:00"), strPtr("16:30:00")),
		record(day, strPtr("09:00:00"), nil),
		record(day, nil, nil),
	}

	stats := buildDailyStats(day, records)

	if stats.TotalPresent != 2 {
		t.Fatalf("TotalPresent = %d, want 2", stats.TotalPresent)
	}
	if stats.TotalCheckedOut != 1 {
		t.Fatalf("TotalCheckedOut = %d, want 1", stats.TotalCheckedOut)
	}
	if stats.StillPresent != 1 {
		t.Fatalf("StillPresent = %d, want 1", stats.StillPresent)
	}
	if stats.AttendanceRate != 66.67 {
		t.Fatalf("AttendanceRate = %v, want 66.67", stats.AttendanceRate)
	}
	if stats.AverageArrivalTime == nil || *stats.AverageArrivalTime != "08:45:00" {
		t.Fatalf("AverageArrivalTime = %v, want 08:45:00", stats.AverageArrivalTime)
	}
	if stats.AverageDepartureTime == nil || *stats.AverageDepartureTime != "16:30:00" {
		t.Fatalf("AverageDepartureTime = %v, want 16:30:00", stats.AverageDepartureTime)
	}
}

func TestBuildDailyStatsEmpty(t *testing.T) {
	stats := buildDailyStats("2025-09-19", nil)

	if stats.TotalPresent != 0 || stats.TotalCheckedOut != 0 || stats.StillPresent != 0 {
		t.Fatalf("expected zero counts, got %+v", stats)
	}
	if stats.AttendanceRate != 0 {
		t.Fatalf("AttendanceRate = %v, want 0", stats.AttendanceRate)
	}
	if stats.AverageArrivalTime != nil || stats.AverageDepartureTime != nil {
		t.Fatalf("expected nil averages, got %+v", stats)
	}
}

func TestBuildWeeklyBreakdown(t *testing.T) {
	// Five day range with attendance on three days only.
	records := []GetListResponse{
		record("2025-09-15", strPtr("08:30:00"), strPtr("16:00:00")),
		record("2025-09-15", strPtr("08:45:00"), nil),
		record("2025-09-17", strPtr("09:00:00"), strPtr("15:30:00")),
		record("2025-09-19", nil, nil),
	}

	breakdown := buildWeeklyBreakdown(records)

	if len(breakdown) != 3 {
		t.Fatalf("breakdown length = %d, want 3 (days with records only)", len(breakdown))
	}
	for i := 1; i < len(breakdown); i++ {
		if breakdown[i-1].Date >= breakdown[i].Date {
			t.Fatalf("breakdown not sorted ascending: %q before %q", breakdown[i-1].Date, breakdown[i].Date)
		}
	}

	first := breakdown[0]
	if first.Date != "2025-09-15" || first.Present != 2 || first.CheckedOut != 1 {
		t.Fatalf("unexpected first day: %+v", first)
	}
	if len(first.Records) != 2 {
		t.Fatalf("first day records = %d, want 2", len(first.Records))
	}

	last := breakdown[2]
	if last.Date != "2025-09-19" || last.Present != 0 || last.CheckedOut != 0 {
		t.Fatalf("unexpected last day: %+v", last)
	}
}

func TestBuildChildSummary(t *testing.T) {
	period := Period{StartDate: "2025-09-15", EndDate: "2025-09-19"}
	records := []GetListResponse{
		record("2025-09-15", strPtr("08:30:00"), strPtr("16:00:00")),
		record("2025-09-16", strPtr("08:40:00"), strPtr("16:10:00")),
		record("2025-09-17", nil, nil),
		record("2025-09-18", strPtr("08:35:00"), nil),
	}

	summary := buildChildSummary(42, period, records)

	if summary.ChildID != 42 {
		t.Fatalf("ChildID = %d", summary.ChildID)
	}
	if summary.TotalDays != 4 || summary.PresentDays != 3 || summary.AbsentDays != 1 {
		t.Fatalf("unexpected day counts: %+v", summary)
	}
	// 3 present out of 4 total days.
	if summary.AttendanceRate != 75.0 {
		t.Fatalf("AttendanceRate = %v, want 75.0", summary.AttendanceRate)
	}
}

func TestBuildChildSummaryNoRecords(t *testing.T) {
	summary := buildChildSummary(42, Period{}, nil)

	if summary.TotalDays != 0 || summary.PresentDays != 0 || summary.AbsentDays != 0 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if summary.AttendanceRate != 0 {
		t.Fatalf("AttendanceRate = %v, want 0 with no records", summary.AttendanceRate)
	}
}

func TestBuildDailyCounts(t *testing.T) {
	day := "2025-09-19"
	records := []GetListResponse{
		record(day, strPtr("08:30:00"), strPtr("16:30:00")),
		record(day, strPtr("09:00:00"), nil),
		record(day, nil, nil),
		record(day, nil, nil),
	}

	counts := buildDailyCounts(day, records)

	if counts.TotalRecords != 4 {
		t.Fatalf("TotalRecords = %d", counts.TotalRecords)
	}
	if counts.CheckedIn != 2 {
		t.Fatalf("CheckedIn = %d, want 2", counts.CheckedIn)
	}
	if counts.CheckedOut != 1 {
		t.Fatalf("CheckedOut = %d, want 1", counts.CheckedOut)
	}
	if counts.StillPresent != 1 {
		t.Fatalf("StillPresent = %d, want 1", counts.StillPresent)
	}
	if counts.Absent != 2 {
		t.Fatalf("Absent = %d, want 2", counts.Absent)
	}
}

func TestRateRounding(t *testing.T) {
	tests := []struct {
		part, total int
		want        float64
	}{
		{0, 0, 0},
		{3, 4, 75.0},
		{2, 3, 66.67},
		{1, 3, 33.33},
		{5, 5, 100.0},
	}

	for _, tt := range tests {
		if got := rate(tt.part, tt.total); got != tt.want {
			t.Errorf("rate(%d, %d) = %v, want %v", tt.part, tt.total, got, tt.want)
		}
	}
}
