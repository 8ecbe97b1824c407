package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/notify"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/seed"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/store"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/util"
)

func newTestServices(t *testing.T) (*ClassService, *ProgressService) {
	t.Helper()
	st := store.New(store.Seed{
		Classes:  seed.Classes(),
		Progress: seed.Progress(),
		User:     seed.User(),
		School:   seed.School(),
		Stats:    seed.Stats(),
	}, notify.NewCenter(time.Hour, 64))

	dashboard := NewDashboardService(st, nil, 30*time.Second)
	return NewClassService(st, nil, dashboard), NewProgressService(st, nil, dashboard)
}

func TestClassServiceCreateAndDetail(t *testing.T) {
	classes, _ := newTestServices(t)
	ctx := context.Background()

	cls, err := classes.Create(ctx, model.ClassInput{
		ClassName: "Taller de Drones",
		TeacherID: "teacher-001",
		SchoolID:  "school-001",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	detail, err := classes.Detail(cls.ClassID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.Class.ClassID != cls.ClassID {
		t.Errorf("detail class = %q", detail.Class.ClassID)
	}
	if len(detail.Students) != 0 {
		t.Errorf("new class has %d students, want 0", len(detail.Students))
	}
}

func TestClassServiceDetailNotFound(t *testing.T) {
	classes, _ := newTestServices(t)
	if _, err := classes.Detail("class-999"); !errors.Is(err, util.ErrClassNotFound) {
		t.Fatalf("err = %v, want ErrClassNotFound", err)
	}
}

func TestClassServiceDeleteCascades(t *testing.T) {
	classes, progress := newTestServices(t)
	ctx := context.Background()

	target := classes.List()[0]
	inClass := len(progress.List(target.ClassID, ""))
	if inClass == 0 {
		t.Fatal("fixture class has no progress rows")
	}

	cascaded, err := classes.Delete(ctx, target.ClassID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if cascaded != inClass {
		t.Errorf("cascaded = %d, want %d", cascaded, inClass)
	}
}

func TestProgressServiceStudentsOverview(t *testing.T) {
	_, progress := newTestServices(t)

	ov := progress.Students()
	if len(ov.Students) == 0 {
		t.Fatal("no student summaries from fixtures")
	}
	if ov.OverallAvg < 0 || ov.OverallAvg > 100 {
		t.Errorf("OverallAvg = %d, out of range", ov.OverallAvg)
	}
	if ov.AtRisk+ov.Top > len(ov.Students) {
		t.Errorf("AtRisk=%d Top=%d exceed %d students", ov.AtRisk, ov.Top, len(ov.Students))
	}
}

func TestDashboardOverviewWithoutCache(t *testing.T) {
	classes, _ := newTestServices(t)
	ctx := context.Background()

	ov := classes.Dashboard.Overview(ctx)
	if ov.Stats.TotalClasses != len(classes.List()) {
		t.Errorf("TotalClasses = %d, want %d", ov.Stats.TotalClasses, len(classes.List()))
	}
	if len(ov.ModuleProgress) != len(model.ModuleCatalog) {
		t.Errorf("ModuleProgress entries = %d, want %d", len(ov.ModuleProgress), len(model.ModuleCatalog))
	}
	if len(ov.WeeklyActivity) == 0 || len(ov.TopStudents) == 0 {
		t.Error("chart seeds missing from overview")
	}
}
