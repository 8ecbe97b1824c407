package store

import (
	"errors"
	"testing"
	"time"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/notify"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/seed"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/util"
)

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	s := New(Seed{
		Classes:  seed.Classes(),
		Progress: seed.Progress(),
		User:     seed.User(),
		School:   seed.School(),
		Stats:    seed.Stats(),
	}, notify.NewCenter(time.Hour, 64))
	return s
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func statusPtr(v model.ProgressStatus) *model.ProgressStatus { return &v }

func TestAddClassGeneratesIDAndCode(t *testing.T) {
	s := newSeededStore(t)
	before := len(s.Classes())

	cls, err := s.AddClass(model.ClassInput{
		ClassName: "Robótica Avanzada",
		TeacherID: "teacher-001",
		SchoolID:  "school-001",
	})
	if err != nil {
		t.Fatalf("AddClass: %v", err)
	}
	if cls.ClassID != "class-009" {
		t.Errorf("ClassID = %q, want class-009", cls.ClassID)
	}
	if len(cls.JoinCode) != 6 {
		t.Errorf("JoinCode = %q, want 6 characters", cls.JoinCode)
	}
	if cls.CreatedAt == "" {
		t.Error("CreatedAt not stamped")
	}
	if got := len(s.Classes()); got != before+1 {
		t.Errorf("class count = %d, want %d", got, before+1)
	}
}

func TestAddClassRejectsEmptyName(t *testing.T) {
	s := newSeededStore(t)
	_, err := s.AddClass(model.ClassInput{ClassName: "   ", TeacherID: "t", SchoolID: "school-001"})
	if !errors.Is(err, util.ErrEmptyClassName) {
		t.Fatalf("err = %v, want ErrEmptyClassName", err)
	}
}

func TestAddClassRejectsDuplicateJoinCode(t *testing.T) {
	s := newSeededStore(t)
	existing := s.Classes()[0]

	_, err := s.AddClass(model.ClassInput{
		ClassName: "Duplicada",
		TeacherID: "teacher-001",
		SchoolID:  existing.SchoolID,
		JoinCode:  existing.JoinCode,
	})
	if !errors.Is(err, util.ErrDuplicateJoinCode) {
		t.Fatalf("err = %v, want ErrDuplicateJoinCode", err)
	}
}

func TestUpdateClassMergesFields(t *testing.T) {
	s := newSeededStore(t)
	target := s.Classes()[0]

	updated, err := s.UpdateClass(target.ClassID, model.ClassUpdate{
		ClassName: strPtr("Nuevo Nombre"),
	})
	if err != nil {
		t.Fatalf("UpdateClass: %v", err)
	}
	if updated.ClassName != "Nuevo Nombre" {
		t.Errorf("ClassName = %q", updated.ClassName)
	}
	if updated.TeacherID != target.TeacherID {
		t.Errorf("TeacherID changed: %q -> %q", target.TeacherID, updated.TeacherID)
	}
}

func TestUpdateClassEmptyUpdateIsIdempotent(t *testing.T) {
	s := newSeededStore(t)
	target := s.Classes()[0]

	updated, err := s.UpdateClass(target.ClassID, model.ClassUpdate{})
	if err != nil {
		t.Fatalf("UpdateClass: %v", err)
	}
	if updated != target {
		t.Errorf("class changed by empty update: %+v -> %+v", target, updated)
	}
}

func TestUpdateClassNotFound(t *testing.T) {
	s := newSeededStore(t)
	_, err := s.UpdateClass("class-999", model.ClassUpdate{ClassName: strPtr("x")})
	if !errors.Is(err, util.ErrClassNotFound) {
		t.Fatalf("err = %v, want ErrClassNotFound", err)
	}
}

func TestUpdateClassRejectsTakenJoinCode(t *testing.T) {
	s := newSeededStore(t)
	classes := s.Classes()
	a, b := classes[0], classes[1]

	_, err := s.UpdateClass(a.ClassID, model.ClassUpdate{JoinCode: strPtr(b.JoinCode)})
	if !errors.Is(err, util.ErrDuplicateJoinCode) {
		t.Fatalf("err = %v, want ErrDuplicateJoinCode", err)
	}

	// Re-asserting its own code is fine.
	if _, err := s.UpdateClass(a.ClassID, model.ClassUpdate{JoinCode: strPtr(a.JoinCode)}); err != nil {
		t.Fatalf("self join code rejected: %v", err)
	}
}

func TestDeleteClassCascades(t *testing.T) {
	s := newSeededStore(t)
	target := s.Classes()[0]

	classBefore := len(s.Classes())
	progressBefore := len(s.Progress("", ""))
	inClass := len(s.Progress(target.ClassID, ""))
	if inClass == 0 {
		t.Fatal("fixture class has no progress rows")
	}

	cascaded, err := s.DeleteClass(target.ClassID)
	if err != nil {
		t.Fatalf("DeleteClass: %v", err)
	}
	if cascaded != inClass {
		t.Errorf("cascaded = %d, want %d", cascaded, inClass)
	}
	if got := len(s.Classes()); got != classBefore-1 {
		t.Errorf("class count = %d, want %d", got, classBefore-1)
	}
	if got := len(s.Progress("", "")); got != progressBefore-inClass {
		t.Errorf("progress count = %d, want %d", got, progressBefore-inClass)
	}
	if got := len(s.Progress(target.ClassID, "")); got != 0 {
		t.Errorf("%d rows still reference deleted class", got)
	}
}

func TestDeleteClassNotFound(t *testing.T) {
	s := newSeededStore(t)
	if _, err := s.DeleteClass("class-999"); !errors.Is(err, util.ErrClassNotFound) {
		t.Fatalf("err = %v, want ErrClassNotFound", err)
	}
}

func TestAddProgressValidation(t *testing.T) {
	s := newSeededStore(t)

	err := s.AddProgress(model.StudentProgress{
		StudentID: "s-new", ModuleName: "Curso Inventado", Score: 50,
	})
	if !errors.Is(err, util.ErrUnknownModule) {
		t.Fatalf("unknown module err = %v", err)
	}

	err = s.AddProgress(model.StudentProgress{
		StudentID: "s-new", ModuleName: model.ModuleCatalog[0], Score: 101,
	})
	if !errors.Is(err, util.ErrInvalidScore) {
		t.Fatalf("out-of-range err = %v", err)
	}
}

func TestAddProgressDefaultsAndUniqueness(t *testing.T) {
	s := newSeededStore(t)
	row := model.StudentProgress{
		StudentID:  "s-new",
		ModuleName: model.ModuleCatalog[0],
		ClassID:    s.Classes()[0].ClassID,
		Score:      85,
	}

	if err := s.AddProgress(row); err != nil {
		t.Fatalf("AddProgress: %v", err)
	}

	got := s.Progress("", "s-new")
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	if got[0].Status != model.NotStarted {
		t.Errorf("Status = %q, want default not_started", got[0].Status)
	}
	if got[0].LastUpdated == "" {
		t.Error("LastUpdated not stamped")
	}

	if err := s.AddProgress(row); !errors.Is(err, util.ErrDuplicateProgress) {
		t.Fatalf("duplicate err = %v, want ErrDuplicateProgress", err)
	}
}

func TestUpdateProgressRestampsLastUpdated(t *testing.T) {
	s := newSeededStore(t)
	s.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }

	target := s.Progress("", "")[0]
	updated, err := s.UpdateProgress(target.StudentID, target.ModuleName, model.ProgressUpdate{})
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if updated.LastUpdated != "2026-03-15" {
		t.Errorf("LastUpdated = %q, want 2026-03-15", updated.LastUpdated)
	}
	if updated.Score != target.Score || updated.Status != target.Status {
		t.Errorf("empty update changed fields: %+v -> %+v", target, updated)
	}
}

func TestUpdateProgressClampsScore(t *testing.T) {
	s := newSeededStore(t)
	target := s.Progress("", "")[0]

	updated, err := s.UpdateProgress(target.StudentID, target.ModuleName, model.ProgressUpdate{
		Score: intPtr(150),
	})
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if updated.Score != 100 {
		t.Errorf("Score = %d, want clamped to 100", updated.Score)
	}

	updated, err = s.UpdateProgress(target.StudentID, target.ModuleName, model.ProgressUpdate{
		Score: intPtr(-5),
	})
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if updated.Score != 0 {
		t.Errorf("Score = %d, want clamped to 0", updated.Score)
	}
}

func TestUpdateProgressStatus(t *testing.T) {
	s := newSeededStore(t)
	target := s.Progress("", "")[0]

	updated, err := s.UpdateProgress(target.StudentID, target.ModuleName, model.ProgressUpdate{
		Status: statusPtr(model.Completed),
	})
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if updated.Status != model.Completed {
		t.Errorf("Status = %q, want completed", updated.Status)
	}
}

func TestDeleteProgressByCompositeKey(t *testing.T) {
	s := newSeededStore(t)
	target := s.Progress("", "")[0]
	before := len(s.Progress("", ""))

	if err := s.DeleteProgress(target.StudentID, target.ModuleName); err != nil {
		t.Fatalf("DeleteProgress: %v", err)
	}
	if got := len(s.Progress("", "")); got != before-1 {
		t.Errorf("count = %d, want %d", got, before-1)
	}

	err := s.DeleteProgress(target.StudentID, target.ModuleName)
	if !errors.Is(err, util.ErrProgressNotFound) {
		t.Fatalf("second delete err = %v, want ErrProgressNotFound", err)
	}
}

func TestProgressFilters(t *testing.T) {
	s := newSeededStore(t)
	all := s.Progress("", "")
	target := all[0]

	byClass := s.Progress(target.ClassID, "")
	for _, p := range byClass {
		if p.ClassID != target.ClassID {
			t.Fatalf("row %q/%q leaked into class filter", p.StudentID, p.ModuleName)
		}
	}

	byStudent := s.Progress("", target.StudentID)
	for _, p := range byStudent {
		if p.StudentID != target.StudentID {
			t.Fatalf("row %q/%q leaked into student filter", p.StudentID, p.ModuleName)
		}
	}

	both := s.Progress(target.ClassID, target.StudentID)
	if len(both) == 0 {
		t.Fatal("combined filter returned nothing")
	}
}

func TestSummaryLiveOverride(t *testing.T) {
	s := newSeededStore(t)
	seeded := seed.Stats()

	got := s.Summary()
	if got.TotalClasses != len(s.Classes()) {
		t.Errorf("TotalClasses = %d, want %d", got.TotalClasses, len(s.Classes()))
	}
	if got.AverageScore != seeded.AverageScore {
		t.Errorf("AverageScore = %d, want seeded %d", got.AverageScore, seeded.AverageScore)
	}

	target := s.Classes()[0]
	if _, err := s.DeleteClass(target.ClassID); err != nil {
		t.Fatalf("DeleteClass: %v", err)
	}
	after := s.Summary()
	if after.TotalClasses != got.TotalClasses-1 {
		t.Errorf("TotalClasses after delete = %d, want %d", after.TotalClasses, got.TotalClasses-1)
	}
}

func TestUpdateUserAndSchoolSingletons(t *testing.T) {
	s := newSeededStore(t)

	u := s.UpdateUser(model.UserUpdate{Name: strPtr("Nueva Maestra")})
	if u.Name != "Nueva Maestra" {
		t.Errorf("user Name = %q", u.Name)
	}
	if u.Email != seed.User().Email {
		t.Errorf("user Email changed: %q", u.Email)
	}

	max := 500
	sc := s.UpdateSchool(model.SchoolUpdate{MaxStudents: &max})
	if sc.MaxStudents != 500 {
		t.Errorf("MaxStudents = %d, want 500", sc.MaxStudents)
	}
	if sc.Name != seed.School().Name {
		t.Errorf("school Name changed: %q", sc.Name)
	}
}

func TestMutationsEmitToasts(t *testing.T) {
	center := notify.NewCenter(time.Hour, 64)
	s := New(Seed{Classes: seed.Classes(), Stats: seed.Stats()}, center)

	if _, err := s.AddClass(model.ClassInput{ClassName: "Con Toast", TeacherID: "t", SchoolID: "school-001"}); err != nil {
		t.Fatalf("AddClass: %v", err)
	}
	toasts := center.List()
	if len(toasts) != 1 || toasts[0].Type != notify.Success {
		t.Fatalf("toasts after success = %+v", toasts)
	}

	if _, err := s.DeleteClass("class-999"); err == nil {
		t.Fatal("expected error")
	}
	toasts = center.List()
	if len(toasts) != 2 || toasts[1].Type != notify.Error {
		t.Fatalf("toasts after failure = %+v", toasts)
	}
}
