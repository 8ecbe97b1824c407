package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/notify"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/seed"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/store"
	"github.com/xuri/excelize/v2"
)

func newReportService(t *testing.T) *ReportService {
	t.Helper()
	st := store.New(store.Seed{
		Classes:  seed.Classes(),
		Progress: seed.Progress(),
		User:     seed.User(),
		School:   seed.School(),
		Stats:    seed.Stats(),
	}, notify.NewCenter(time.Hour, 64))
	return NewReportService(st)
}

func TestStudentsCSV(t *testing.T) {
	svc := newReportService(t)

	data, err := svc.StudentsCSV()
	if err != nil {
		t.Fatalf("StudentsCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) < 2 {
		t.Fatalf("got %d records, want header plus rows", len(records))
	}

	header := strings.Join(records[0], ",")
	if header != "Name,Class,Completed,Total,AvgScore" {
		t.Errorf("header = %q", header)
	}

	wantRows := len(svc.Store.StudentSummaries())
	if got := len(records) - 1; got != wantRows {
		t.Errorf("data rows = %d, want %d", got, wantRows)
	}
}

func TestSummaryText(t *testing.T) {
	svc := newReportService(t)

	text := svc.SummaryText()
	if !strings.Contains(text, seed.School().Name) {
		t.Errorf("summary missing school name:\n%s", text)
	}
	if !strings.Contains(text, "Clases: 8") {
		t.Errorf("summary missing class count:\n%s", text)
	}
}

func TestWorkbookXLSX(t *testing.T) {
	svc := newReportService(t)

	data, err := svc.WorkbookXLSX()
	if err != nil {
		t.Fatalf("WorkbookXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Módulos", "Estudiantes"} {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil || idx < 0 {
			t.Fatalf("sheet %q missing (idx=%d, err=%v)", sheet, idx, err)
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			t.Fatalf("read sheet %q: %v", sheet, err)
		}
		if len(rows) < 2 {
			t.Errorf("sheet %q has %d rows, want header plus data", sheet, len(rows))
		}
	}

	cell, err := f.GetCellValue("Estudiantes", "A1")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if cell != "Nombre" {
		t.Errorf("Estudiantes!A1 = %q, want Nombre", cell)
	}
}
