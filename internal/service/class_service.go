package service

import (
	"context"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/stats"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/store"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/util"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/monitoring"
)

type ClassService struct {
	Store     *store.Store
	Persister *Persister
	Dashboard *DashboardService
}

func NewClassService(st *store.Store, persister *Persister, dashboard *DashboardService) *ClassService {
	return &ClassService{Store: st, Persister: persister, Dashboard: dashboard}
}

func (s *ClassService) List() []model.Class {
	return s.Store.Classes()
}

func (s *ClassService) Create(ctx context.Context, in model.ClassInput) (model.Class, error) {
	cls, err := s.Store.AddClass(in)
	monitoring.ObserveMutation("class", "add", err)
	if err != nil {
		return model.Class{}, err
	}

	s.Persister.async("class.create", func() error {
		c := cls
		return s.Persister.Classes.Save(&c)
	})
	s.Dashboard.InvalidateCache(ctx)
	return cls, nil
}

func (s *ClassService) Update(ctx context.Context, classID string, data model.ClassUpdate) (model.Class, error) {
	cls, err := s.Store.UpdateClass(classID, data)
	monitoring.ObserveMutation("class", "update", err)
	if err != nil {
		return model.Class{}, err
	}

	s.Persister.async("class.update", func() error {
		c := cls
		return s.Persister.Classes.Save(&c)
	})
	s.Dashboard.InvalidateCache(ctx)
	return cls, nil
}

func (s *ClassService) Delete(ctx context.Context, classID string) (int, error) {
	cascaded, err := s.Store.DeleteClass(classID)
	monitoring.ObserveMutation("class", "delete", err)
	if err != nil {
		return 0, err
	}

	s.Persister.async("class.delete", func() error {
		if err := s.Persister.Progress.DeleteByClass(classID); err != nil {
			return err
		}
		return s.Persister.Classes.Delete(classID)
	})
	s.Dashboard.InvalidateCache(ctx)
	return cascaded, nil
}

// ClassDetail pairs the per-class rollup with its per-student list,
// the shape the class card expands into.
type ClassDetail struct {
	Class    model.Class            `json:"class"`
	Summary  model.ClassSummary     `json:"summary"`
	Students []model.StudentSummary `json:"students"`
}

func (s *ClassService) Detail(classID string) (*ClassDetail, error) {
	cls, ok := s.Store.ClassByID(classID)
	if !ok {
		return nil, util.ErrClassNotFound
	}

	rows := s.Store.Progress(classID, "")
	return &ClassDetail{
		Class:    cls,
		Summary:  s.Store.ClassSummary(classID),
		Students: stats.StudentSummaries(rows, s.Store.Classes()),
	}, nil
}
