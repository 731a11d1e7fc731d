package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/config"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/utils"
)

const JobRankingSnapshot = "ranking_snapshot"

// RankingSnapshotter grava o ranking mensal de uma empresa
type RankingSnapshotter interface {
	Snapshot(ctx context.Context, companyID, month string) ([]*domain.StoreRankingItem, error)
}

type RankingSnapshotService struct {
	*cronJob
	companyRepo repository.CompanyRepository
	ranking     RankingSnapshotter
}

func NewRankingSnapshotService(
	companyRepo repository.CompanyRepository,
	ranking RankingSnapshotter,
	cfg *config.Config,
) *RankingSnapshotService {
	s := &RankingSnapshotService{
		companyRepo: companyRepo,
		ranking:     ranking,
	}
	s.cronJob = newCronJob(JobRankingSnapshot, JobConfig{
		CronSchedule: cfg.RankingSnapshot.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.RankingSnapshot.Enabled,
	}, s.UpdateRankingSnapshot)
	return s
}

// UpdateRankingSnapshot grava o ranking do mês de ontem para todas as empresas ativas.
// No dia 1 isso fecha o mês anterior.
func (s *RankingSnapshotService) UpdateRankingSnapshot(ctx context.Context) error {
	return s.snapshotAt(ctx, s.now())
}

func (s *RankingSnapshotService) snapshotAt(ctx context.Context, processingDate time.Time) error {
	yesterday := processingDate.AddDate(0, 0, -1)
	month := utils.MonthKey(yesterday)

	companies, err := s.companyRepo.List(ctx, true)
	if err != nil {
		logrus.WithError(err).Error("RankingSnapshotService: Erro ao buscar empresas ativas")
		return err
	}

	if len(companies) == 0 {
		logrus.Info("Nenhuma empresa ativa para atualização do ranking")
		return nil
	}

	failed := 0
	for _, company := range companies {
		items, err := s.ranking.Snapshot(ctx, company.ID, month)
		if err != nil {
			failed++
			logrus.WithError(err).WithFields(logrus.Fields{
				"company_id": company.ID,
				"month":      month,
			}).Error("RankingSnapshotService: Erro ao gravar ranking da empresa")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"company_id": company.ID,
			"month":      month,
			"stores":     len(items),
		}).Info("Ranking das lojas atualizado")
	}

	if failed > 0 {
		return fmt.Errorf("ranking não atualizado para %d de %d empresas", failed, len(companies))
	}
	return nil
}
