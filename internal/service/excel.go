package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type AttendanceRow struct {
	ChildName    string
	Classroom    string
	Date         string
	Status       string
	CheckInTime  string
	CheckOutTime string
	TotalHours   string
}

// AddAttendanceToExcel writes the rows into an xlsx workbook at fileName,
// creating the header row first.
func AddAttendanceToExcel(rows []AttendanceRow, fileName string) error {
	f := excelize.NewFile()
	sheet := "Sheet1"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Child", "Classroom", "Date", "Status", "Check-In", "Check-Out", "Total Hours"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, entry := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.ChildName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.Classroom)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.Date)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.Status)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.CheckInTime)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.CheckOutTime)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), entry.TotalHours)
		rowNum++
	}

	if err := f.SaveAs(fileName); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}
