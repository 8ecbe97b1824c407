package service

import (
	"context"
	"math"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/stats"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/store"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/monitoring"
)

type ProgressService struct {
	Store     *store.Store
	Persister *Persister
	Dashboard *DashboardService
}

func NewProgressService(st *store.Store, persister *Persister, dashboard *DashboardService) *ProgressService {
	return &ProgressService{Store: st, Persister: persister, Dashboard: dashboard}
}

func (s *ProgressService) List(classID, studentID string) []model.StudentProgress {
	return s.Store.Progress(classID, studentID)
}

func (s *ProgressService) Add(ctx context.Context, row model.StudentProgress) error {
	err := s.Store.AddProgress(row)
	monitoring.ObserveMutation("progress", "add", err)
	if err != nil {
		return err
	}

	s.Persister.async("progress.add", func() error {
		r := row
		return s.Persister.Progress.Save(&r)
	})
	s.Dashboard.InvalidateCache(ctx)
	return nil
}

func (s *ProgressService) Update(ctx context.Context, studentID, moduleName string, data model.ProgressUpdate) (model.StudentProgress, error) {
	row, err := s.Store.UpdateProgress(studentID, moduleName, data)
	monitoring.ObserveMutation("progress", "update", err)
	if err != nil {
		return model.StudentProgress{}, err
	}

	s.Persister.async("progress.update", func() error {
		r := row
		return s.Persister.Progress.Save(&r)
	})
	s.Dashboard.InvalidateCache(ctx)
	return row, nil
}

func (s *ProgressService) Delete(ctx context.Context, studentID, moduleName string) error {
	err := s.Store.DeleteProgress(studentID, moduleName)
	monitoring.ObserveMutation("progress", "delete", err)
	if err != nil {
		return err
	}

	s.Persister.async("progress.delete", func() error {
		return s.Persister.Progress.Delete(studentID, moduleName)
	})
	s.Dashboard.InvalidateCache(ctx)
	return nil
}

// StudentsOverview is the students page payload: every per-student
// rollup plus the headline counters above the table.
type StudentsOverview struct {
	Students   []model.StudentSummary `json:"students"`
	OverallAvg int                    `json:"overallAvg"`
	AtRisk     int                    `json:"atRisk"`
	Top        int                    `json:"top"`
}

func (s *ProgressService) Students() StudentsOverview {
	summaries := s.Store.StudentSummaries()

	overall := 0
	if len(summaries) > 0 {
		sum := 0
		for _, st := range summaries {
			sum += st.AvgScore
		}
		overall = int(math.Round(float64(sum) / float64(len(summaries))))
	}

	return StudentsOverview{
		Students:   summaries,
		OverallAvg: overall,
		AtRisk:     stats.AtRiskCount(summaries),
		Top:        stats.TopCount(summaries),
	}
}
