package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/Nhat-School/F1-Demo/internal/logger"
	"github.com/Nhat-School/F1-Demo/internal/metrics"
	"github.com/Nhat-School/F1-Demo/internal/models"
	"github.com/Nhat-School/F1-Demo/internal/repository"
	"github.com/Nhat-School/F1-Demo/internal/standings"
)

const standingsCacheKey = "standings"

// StandingsService serves the derived leaderboards. Every refresh is a total
// recomputation over the full result history; the TTL cache only
// materializes the latest snapshot for the read path.
type StandingsService struct {
	resultRepo repository.ResultRepository
	snapshots  *cache.Cache
	ttl        time.Duration
	log        *logrus.Logger
	audit      *logger.AuditLogger
}

// NewStandingsService creates a new standings service with a snapshot TTL
func NewStandingsService(resultRepo repository.ResultRepository, ttl time.Duration, log *logrus.Logger) *StandingsService {
	return &StandingsService{
		resultRepo: resultRepo,
		snapshots:  cache.New(ttl, 2*ttl),
		ttl:        ttl,
		log:        log,
		audit:      logger.NewAuditLogger(log),
	}
}

// Standings returns both leaderboards, from the snapshot cache when fresh.
func (s *StandingsService) Standings(ctx context.Context) (*models.StandingsTable, error) {
	if cached, found := s.snapshots.Get(standingsCacheKey); found {
		if table, ok := cached.(*models.StandingsTable); ok {
			metrics.RecordStandingsRequest(true)
			return table, nil
		}
	}

	metrics.RecordStandingsRequest(false)
	return s.Refresh(ctx)
}

// Refresh recomputes the standings snapshot from the full result history and
// replaces the cached copy. The cron scheduler calls this periodically so
// reads after a scoring run converge without waiting for TTL expiry.
func (s *StandingsService) Refresh(ctx context.Context) (*models.StandingsTable, error) {
	start := time.Now()

	rows, err := s.resultRepo.GetJoined(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load result history: %w", err)
	}

	table := standings.Aggregate(rows)
	s.snapshots.Set(standingsCacheKey, table, s.ttl)

	elapsed := time.Since(start)
	metrics.RecordStandingsRefresh(elapsed.Seconds(), len(table.Racers), len(table.Teams))
	s.audit.LogStandingsRefresh(len(rows), elapsed)
	s.log.WithFields(logrus.Fields{
		"result_rows": len(rows),
		"racers":      len(table.Racers),
		"teams":       len(table.Teams),
	}).Debug("Standings recomputed")

	return table, nil
}

// Invalidate drops the cached snapshot, forcing the next read to recompute.
// Called after a successful scoring run.
func (s *StandingsService) Invalidate() {
	s.snapshots.Delete(standingsCacheKey)
}

// RacerStanding returns the drill-down view for one racer.
func (s *StandingsService) RacerStanding(ctx context.Context, racerID uuid.UUID) (*models.RacerStanding, error) {
	table, err := s.Standings(ctx)
	if err != nil {
		return nil, err
	}

	for i := range table.Racers {
		if table.Racers[i].RacerID == racerID {
			return &table.Racers[i], nil
		}
	}

	return nil, models.ErrNotFound
}

// TeamStanding returns the drill-down view for one team, one row per race.
func (s *StandingsService) TeamStanding(ctx context.Context, teamID uuid.UUID) (*models.TeamStanding, error) {
	table, err := s.Standings(ctx)
	if err != nil {
		return nil, err
	}

	for i := range table.Teams {
		if table.Teams[i].TeamID == teamID {
			return &table.Teams[i], nil
		}
	}

	return nil, models.ErrNotFound
}
