package stats

import (
	"testing"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
)

func row(studentID, moduleName string, score int, status model.ProgressStatus) model.StudentProgress {
	return model.StudentProgress{
		StudentID:  studentID,
		ModuleName: moduleName,
		ClassID:    "class-001",
		Score:      score,
		Status:     status,
	}
}

func TestStudentSummariesAggregation(t *testing.T) {
	rows := []model.StudentProgress{
		row("s1", "Introducción a la Robótica", 80, model.Completed),
		row("s1", "Sensores y Actuadores", 60, model.InProgress),
	}
	classes := []model.Class{{ClassID: "class-001", ClassName: "Robótica A"}}

	out := StudentSummaries(rows, classes)
	if len(out) != 1 {
		t.Fatalf("got %d summaries, want 1", len(out))
	}
	s := out[0]
	if s.AvgScore != 70 {
		t.Errorf("AvgScore = %d, want 70", s.AvgScore)
	}
	if s.CompletedModules != 1 || s.TotalModules != 2 {
		t.Errorf("completed/total = %d/%d, want 1/2", s.CompletedModules, s.TotalModules)
	}
	if s.ClassName != "Robótica A" {
		t.Errorf("ClassName = %q, want Robótica A", s.ClassName)
	}
}

func TestStudentSummariesFallbacks(t *testing.T) {
	rows := []model.StudentProgress{
		{StudentID: "s9", ModuleName: "Sensores y Actuadores", ClassID: "missing", Score: 50},
	}

	out := StudentSummaries(rows, nil)
	if out[0].Name != "s9" {
		t.Errorf("Name = %q, want fallback to student id", out[0].Name)
	}
	if out[0].ClassName != "—" {
		t.Errorf("ClassName = %q, want —", out[0].ClassName)
	}
}

func TestStudentSummariesFirstSeenOrder(t *testing.T) {
	rows := []model.StudentProgress{
		row("b", "Introducción a la Robótica", 70, model.Completed),
		row("a", "Introducción a la Robótica", 70, model.Completed),
		row("b", "Sensores y Actuadores", 70, model.Completed),
	}

	out := StudentSummaries(rows, nil)
	if out[0].StudentID != "b" || out[1].StudentID != "a" {
		t.Fatalf("order = [%s %s], want [b a]", out[0].StudentID, out[1].StudentID)
	}
}

func TestRoundMeanHalfUp(t *testing.T) {
	// 70+75 = 145, mean 72.5, rounds up
	if got := roundMean(145, 2); got != 73 {
		t.Errorf("roundMean(145,2) = %d, want 73", got)
	}
	if got := roundMean(0, 0); got != 0 {
		t.Errorf("roundMean(0,0) = %d, want 0", got)
	}
}

func TestClassSummaryEmpty(t *testing.T) {
	got := ClassSummary(nil, "class-001")
	if got.UniqueStudents != 0 || got.AvgScore != 0 || got.CompletionRate != 0 {
		t.Fatalf("empty class summary = %+v, want zeros", got)
	}
}

func TestClassSummaryFiltersByClass(t *testing.T) {
	rows := []model.StudentProgress{
		row("s1", "Introducción a la Robótica", 100, model.Completed),
		row("s2", "Introducción a la Robótica", 50, model.InProgress),
		{StudentID: "s3", ModuleName: "Introducción a la Robótica", ClassID: "other", Score: 0},
	}

	got := ClassSummary(rows, "class-001")
	if got.UniqueStudents != 2 {
		t.Errorf("UniqueStudents = %d, want 2", got.UniqueStudents)
	}
	if got.AvgScore != 75 {
		t.Errorf("AvgScore = %d, want 75", got.AvgScore)
	}
	if got.CompletionRate != 50 {
		t.Errorf("CompletionRate = %d, want 50", got.CompletionRate)
	}
}

func TestModuleSummariesCoverCatalog(t *testing.T) {
	out := ModuleSummaries(nil)
	if len(out) != len(model.ModuleCatalog) {
		t.Fatalf("got %d modules, want %d", len(out), len(model.ModuleCatalog))
	}
	for i, mp := range out {
		if mp.ModuleName != model.ModuleCatalog[i] {
			t.Fatalf("module %d = %q, want %q", i, mp.ModuleName, model.ModuleCatalog[i])
		}
		if mp.AvgScore != 0 || mp.TotalStudents != 0 || mp.CompletedCount != 0 {
			t.Errorf("module %q not zeroed: %+v", mp.ModuleName, mp)
		}
	}
}

func TestSummaryOverridesLiveFieldsOnly(t *testing.T) {
	seeded := model.DashboardStats{
		TotalStudents:        147,
		TotalClasses:         8,
		AverageScore:         78,
		CompletionRate:       64,
		ActiveModules:        12,
		LicenseDaysRemaining: 245,
	}
	classes := []model.Class{{ClassID: "c1"}, {ClassID: "c2"}}
	rows := []model.StudentProgress{
		row("s1", "Introducción a la Robótica", 80, model.Completed),
		row("s1", "Sensores y Actuadores", 80, model.Completed),
		row("s2", "Introducción a la Robótica", 80, model.Completed),
	}

	got := Summary(seeded, classes, rows)
	if got.TotalClasses != 2 {
		t.Errorf("TotalClasses = %d, want 2", got.TotalClasses)
	}
	if got.TotalStudents != 2 {
		t.Errorf("TotalStudents = %d, want 2", got.TotalStudents)
	}
	if got.AverageScore != 78 || got.CompletionRate != 64 || got.ActiveModules != 12 || got.LicenseDaysRemaining != 245 {
		t.Errorf("seeded fields changed: %+v", got)
	}
}

func TestBreakdownPercentages(t *testing.T) {
	rows := []model.StudentProgress{
		row("s1", "Introducción a la Robótica", 80, model.Completed),
		row("s2", "Introducción a la Robótica", 40, model.InProgress),
		row("s3", "Introducción a la Robótica", 0, model.NotStarted),
		row("s4", "Introducción a la Robótica", 0, model.NotStarted),
	}

	got := Breakdown(rows)
	if got.Completed != 25 || got.InProgress != 25 || got.NotStarted != 50 {
		t.Fatalf("breakdown = %+v, want 25/25/50", got)
	}
}

func TestBreakdownEmpty(t *testing.T) {
	got := Breakdown(nil)
	if got.Completed != 0 || got.InProgress != 0 || got.NotStarted != 0 {
		t.Fatalf("breakdown = %+v, want zeros", got)
	}
}

func TestAtRiskAndTopCounts(t *testing.T) {
	summaries := []model.StudentSummary{
		{AvgScore: 59},
		{AvgScore: 60},
		{AvgScore: 89},
		{AvgScore: 90},
		{AvgScore: 100},
	}
	if got := AtRiskCount(summaries); got != 1 {
		t.Errorf("AtRiskCount = %d, want 1", got)
	}
	if got := TopCount(summaries); got != 2 {
		t.Errorf("TopCount = %d, want 2", got)
	}
}
