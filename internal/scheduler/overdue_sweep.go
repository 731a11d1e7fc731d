package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/internal/config"
)

const JobOverdueSweep = "overdue_sweep"

// OverdueSweeper marca como atrasados os títulos pendentes vencidos
type OverdueSweeper interface {
	SweepOverdue(ctx context.Context, today time.Time) (int64, error)
}

type OverdueSweepService struct {
	*cronJob
	sweeper OverdueSweeper
}

func NewOverdueSweepService(sweeper OverdueSweeper, cfg *config.Config) *OverdueSweepService {
	s := &OverdueSweepService{sweeper: sweeper}
	s.cronJob = newCronJob(JobOverdueSweep, JobConfig{
		CronSchedule: cfg.OverdueSweep.CronSchedule, // Default: 1h da manhã todos os dias
		SyncEnabled:  cfg.OverdueSweep.Enabled,
	}, s.SweepOverdue)
	return s
}

func (s *OverdueSweepService) SweepOverdue(ctx context.Context) error {
	affected, err := s.sweeper.SweepOverdue(ctx, s.now())
	if err != nil {
		return err
	}

	logrus.WithField("job", JobOverdueSweep).Infof("%d títulos marcados como atrasados", affected)
	return nil
}
