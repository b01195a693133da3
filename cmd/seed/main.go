package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/shiftswap-service/internal/config"
	"github.com/spec-kit/shiftswap-service/internal/domain"
	"github.com/spec-kit/shiftswap-service/internal/observability"
	"github.com/spec-kit/shiftswap-service/internal/persistence"
	"github.com/spec-kit/shiftswap-service/internal/repository"
)

// Loads the development fixture: four colleagues and one shift owned by
// the requester, so a swap request for that shift exercises every branch
// of the ranking flow. Existing data is cleared first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	pool := pg.PoolHandle()
	colleagueRepo := repository.NewColleagueRepository(pool)
	shiftRepo := repository.NewShiftRepository(pool)

	if err := shiftRepo.DeleteAll(ctx); err != nil {
		logger.Fatal("failed to clear shifts", zap.Error(err))
	}
	if err := colleagueRepo.DeleteAll(ctx); err != nil {
		logger.Fatal("failed to clear colleagues", zap.Error(err))
	}

	logger.Info("seeding database")

	colleagues := []*domain.Colleague{
		{Name: "Alice (Requestor)", Role: "Waiter", HoursLast7Days: 35},
		{Name: "Bob (Overworked)", Role: "Waiter", HoursLast7Days: 55},
		{Name: "Charlie (Fresh)", Role: "Waiter", HoursLast7Days: 10},
		{Name: "Dave (Cook)", Role: "Cook", HoursLast7Days: 20},
	}
	for _, colleague := range colleagues {
		if err := colleagueRepo.Create(ctx, colleague); err != nil {
			logger.Fatal("failed to create colleague", zap.String("name", colleague.Name), zap.Error(err))
		}
	}
	alice := colleagues[0]

	// Tomorrow, 09:00-17:00.
	start := time.Now().AddDate(0, 0, 1)
	start = time.Date(start.Year(), start.Month(), start.Day(), 9, 0, 0, 0, start.Location())
	shift := &domain.Shift{
		Role:        "Waiter",
		StartTime:   start,
		EndTime:     start.Add(8 * time.Hour),
		ColleagueID: alice.ID,
	}
	if err := shiftRepo.Create(ctx, shift); err != nil {
		logger.Fatal("failed to create shift", zap.Error(err))
	}

	logger.Info("seed complete",
		zap.Int64("shift_id", shift.ID),
		zap.Int64("requester_id", alice.ID),
		zap.String("candidates", "Bob (55h), Charlie (10h), Dave (Cook - ineligible)"))
}
