package service

import (
	"github.com/cultivatecmx-maker/cultivatec-school/internal/repository"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/logger"
	"go.uber.org/zap"
)

// Persister bundles the durable repositories behind the in-memory
// store. Mutations write through asynchronously, fire-and-forget: the
// store answered the caller already and a lost write only costs
// durability, never dashboard consistency. Nil when the database is
// disabled.
type Persister struct {
	Classes  *repository.ClassRepository
	Progress *repository.ProgressRepository
	Users    *repository.UserRepository
	Schools  *repository.SchoolRepository
}

func NewPersister(classes *repository.ClassRepository, progress *repository.ProgressRepository, users *repository.UserRepository, schools *repository.SchoolRepository) *Persister {
	return &Persister{Classes: classes, Progress: progress, Users: users, Schools: schools}
}

func (p *Persister) enabled() bool {
	return p != nil
}

// async runs one write-through in the background, logging failures.
func (p *Persister) async(op string, fn func() error) {
	if !p.enabled() {
		return
	}
	go func() {
		if err := fn(); err != nil {
			logger.Log.Error("write-through failed", zap.String("op", op), zap.Error(err))
		}
	}()
}
