package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/store"
	"github.com/xuri/excelize/v2"
)

// ReportService renders the current store state as downloadable
// reports: CSV for spreadsheets, XLSX for the full workbook, plain
// text for a quick summary.
type ReportService struct {
	Store *store.Store
}

func NewReportService(st *store.Store) *ReportService {
	return &ReportService{Store: st}
}

// StudentsCSV writes one row per student rollup.
func (s *ReportService) StudentsCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Name", "Class", "Completed", "Total", "AvgScore"}); err != nil {
		return nil, err
	}
	for _, st := range s.Store.StudentSummaries() {
		row := []string{
			st.Name,
			st.ClassName,
			strconv.Itoa(st.CompletedModules),
			strconv.Itoa(st.TotalModules),
			strconv.Itoa(st.AvgScore),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// SummaryText is the plain-text digest shown in the export preview.
func (s *ReportService) SummaryText() string {
	stats := s.Store.Summary()
	breakdown := s.Store.StatusBreakdown()
	school := s.Store.School()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s — resumen de progreso\n", school.Name)
	fmt.Fprintf(&buf, "Generado: %s\n\n", time.Now().Format("2006-01-02 15:04"))
	fmt.Fprintf(&buf, "Clases: %d\n", stats.TotalClasses)
	fmt.Fprintf(&buf, "Estudiantes: %d\n", stats.TotalStudents)
	fmt.Fprintf(&buf, "Promedio general: %d\n", stats.AverageScore)
	fmt.Fprintf(&buf, "Tasa de finalización: %d%%\n\n", stats.CompletionRate)
	fmt.Fprintf(&buf, "Completado: %d%%  En progreso: %d%%  Sin iniciar: %d%%\n",
		breakdown.Completed, breakdown.InProgress, breakdown.NotStarted)
	return buf.String()
}

type sheetSpec struct {
	title  string
	header []string
	rows   [][]string
}

// WorkbookXLSX builds the two-sheet workbook (per-module and
// per-student rollups) and returns the serialized file.
func (s *ReportService) WorkbookXLSX() ([]byte, error) {
	modules := sheetSpec{
		title:  "Módulos",
		header: []string{"Módulo", "Promedio", "Estudiantes", "Completados"},
	}
	for _, m := range s.Store.ModuleSummaries() {
		modules.rows = append(modules.rows, []string{
			m.ModuleName,
			strconv.Itoa(m.AvgScore),
			strconv.Itoa(m.TotalStudents),
			strconv.Itoa(m.CompletedCount),
		})
	}

	students := sheetSpec{
		title:  "Estudiantes",
		header: []string{"Nombre", "Clase", "Completados", "Total", "Promedio"},
	}
	for _, st := range s.Store.StudentSummaries() {
		students.rows = append(students.rows, []string{
			st.Name,
			st.ClassName,
			strconv.Itoa(st.CompletedModules),
			strconv.Itoa(st.TotalModules),
			strconv.Itoa(st.AvgScore),
		})
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, spec := range []sheetSpec{modules, students} {
		if i == 0 {
			f.SetSheetName("Sheet1", spec.title)
		} else {
			if _, err := f.NewSheet(spec.title); err != nil {
				return nil, err
			}
		}
		if err := writeSheet(f, spec); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, spec sheetSpec) error {
	for col, h := range spec.header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(spec.title, cell, h); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(spec.header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(spec.title, "A1", last, bold); err != nil {
		return err
	}

	for r, row := range spec.rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(spec.title, cell, val); err != nil {
				return err
			}
		}
	}

	// Width follows the longest value per column, capped to keep the
	// sheet readable.
	for c := range spec.header {
		width := float64(len(spec.header[c])) + 4
		for _, row := range spec.rows {
			if c < len(row) && float64(len(row[c]))+4 > width {
				width = float64(len(row[c])) + 4
			}
		}
		if width > 48 {
			width = 48
		}
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(spec.title, name, name, width); err != nil {
			return err
		}
	}

	return f.AutoFilter(spec.title, "A1:"+last, nil)
}
