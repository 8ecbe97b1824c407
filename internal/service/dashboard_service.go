package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/seed"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/store"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/logger"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const overviewCacheKey = "dashboard:overview"

// Overview is the full landing-page payload: live counters merged over
// the seeded baseline plus the chart series the frontend renders.
type Overview struct {
	Stats             model.DashboardStats   `json:"stats"`
	StatusBreakdown   model.StatusBreakdown  `json:"statusBreakdown"`
	ModuleProgress    []model.ModuleProgress `json:"moduleProgress"`
	WeeklyActivity    []model.WeeklyActivity `json:"weeklyActivity"`
	ScoreDistribution []model.ScoreBucket    `json:"scoreDistribution"`
	TopStudents       []model.TopStudent     `json:"topStudents"`
	MonthlyTrend      []model.MonthlyTrend   `json:"monthlyTrend"`
	GeneratedAt       string                 `json:"generatedAt"`
}

type DashboardService struct {
	Store    *store.Store
	Redis    *redis.Client
	CacheTTL time.Duration
}

func NewDashboardService(st *store.Store, rdb *redis.Client, cacheTTL time.Duration) *DashboardService {
	return &DashboardService{Store: st, Redis: rdb, CacheTTL: cacheTTL}
}

func (s *DashboardService) Overview(ctx context.Context) Overview {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, overviewCacheKey).Result(); err == nil {
			var ov Overview
			if json.Unmarshal([]byte(cached), &ov) == nil {
				return ov
			}
		}
	}

	ov := s.build()

	if s.Redis != nil {
		if payload, err := json.Marshal(ov); err == nil {
			if err := s.Redis.Set(ctx, overviewCacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}
	return ov
}

func (s *DashboardService) build() Overview {
	return Overview{
		Stats:             s.Store.Summary(),
		StatusBreakdown:   s.Store.StatusBreakdown(),
		ModuleProgress:    s.Store.ModuleSummaries(),
		WeeklyActivity:    seed.WeeklyActivity(),
		ScoreDistribution: seed.ScoreDistribution(),
		TopStudents:       seed.TopStudents(),
		MonthlyTrend:      seed.MonthlyTrend(),
		GeneratedAt:       time.Now().Format(time.RFC3339),
	}
}

func (s *DashboardService) Modules() []model.ModuleProgress {
	return s.Store.ModuleSummaries()
}

// InvalidateCache drops the cached overview after any mutation so the
// next read rebuilds it from the store.
func (s *DashboardService) InvalidateCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, overviewCacheKey).Err(); err != nil {
		logger.Log.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
