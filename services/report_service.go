package services

import (
	"bytes"
	"fmt"

	"edutrack_go/repositories"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportService renders class data as spreadsheet downloads.
type ReportService struct {
	marks *repositories.MarksRepository
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{marks: repositories.NewMarksRepository(db)}
}

// MarksReport builds an .xlsx marks sheet for a class: one row per student
// with component scores, total out of 400 and the letter grade.
func (r *ReportService) MarksReport(className string, teacherID uint) ([]byte, error) {
	entries, err := r.marks.ListByClass(className, teacherID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Marks"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Roll No", "Name", "Unit 1", "Unit 2", "Midterm", "Final", "Total", "Grade"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, e := range entries {
		values := []interface{}{
			e.RollNo, e.FullName, e.Unit1, e.Unit2, e.Midterm, e.Final,
			fmt.Sprintf("%d/400", e.Total), e.Grade,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
