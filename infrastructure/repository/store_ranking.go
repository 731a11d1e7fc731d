package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

const (
	storeRankingTable = "store_ranking sr"
)

type StoreRankingRepository interface {
	GetByStoreID(ctx context.Context, storeID string, month string) (*domain.StoreRankingItem, error)
	GetStoreRanking(ctx context.Context, companyID string, month string) (*domain.StoreRankingResponse, error)
	SaveOrUpdateStoreRanking(ctx context.Context, rankings []*domain.StoreRankingItem) error
}

type storeRankingRepository struct {
	conn *postgres.Connection
}

func NewStoreRankingRepository(conn *postgres.Connection) StoreRankingRepository {
	return &storeRankingRepository{
		conn: conn,
	}
}

var storeRankingColumns = []string{
	"sr.id",
	"sr.empresa_id",
	"sr.loja_id",
	"sr.month",
	"sr.store_name",
	"sr.revenue",
	"sr.target",
	"sr.percentage",
	"sr.has_goal",
	"sr.divergent",
	"sr.semaphore",
	"sr.position",
	"sr.position_change",
	"sr.previous_position",
	"sr.created_at",
	"sr.updated_at",
}

func (r *storeRankingRepository) GetStoreRanking(ctx context.Context, companyID string, month string) (*domain.StoreRankingResponse, error) {
	query := psql.
		Select(storeRankingColumns...).
		From(storeRankingTable).
		Where(squirrel.Eq{"sr.empresa_id": companyID, "sr.month": month}).
		OrderBy("sr.position ASC")

	rankings, err := queryAll(ctx, r.conn, query, scanStoreRankingItem)
	if err != nil {
		return nil, err
	}

	// Manter o último update mais recente
	var lastUpdate time.Time
	for _, item := range rankings {
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.StoreRankingResponse{
		Month:      month,
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *storeRankingRepository) GetByStoreID(ctx context.Context, storeID string, month string) (*domain.StoreRankingItem, error) {
	query := psql.
		Select(storeRankingColumns...).
		From(storeRankingTable).
		Where(squirrel.Eq{"sr.loja_id": storeID, "sr.month": month})

	return queryOne(ctx, r.conn, query, scanStoreRankingItem)
}

func (r *storeRankingRepository) SaveOrUpdateStoreRanking(ctx context.Context, rankings []*domain.StoreRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	// Construir query de inserção em lote
	query := psql.
		Insert("store_ranking").
		Columns(
			"empresa_id",
			"loja_id",
			"month",
			"store_name",
			"revenue",
			"target",
			"percentage",
			"has_goal",
			"divergent",
			"semaphore",
			"position",
			"position_change",
			"previous_position",
		)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.CompanyID,
			ranking.StoreID,
			ranking.Month,
			ranking.StoreName,
			ranking.Revenue,
			ranking.Target,
			ranking.Percentage,
			ranking.HasGoal,
			ranking.Divergent,
			string(ranking.Semaphore),
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (loja_id, month) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			revenue = EXCLUDED.revenue,
			target = EXCLUDED.target,
			percentage = EXCLUDED.percentage,
			has_goal = EXCLUDED.has_goal,
			divergent = EXCLUDED.divergent,
			semaphore = EXCLUDED.semaphore,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	if _, err := exec(ctx, r.conn, query); err != nil {
		return fmt.Errorf("erro ao salvar ranking de lojas: %w", err)
	}

	return nil
}

func scanStoreRankingItem(row scanner) (*domain.StoreRankingItem, error) {
	item := &domain.StoreRankingItem{}
	var semaphore string

	err := row.Scan(
		&item.ID,
		&item.CompanyID,
		&item.StoreID,
		&item.Month,
		&item.StoreName,
		&item.Revenue,
		&item.Target,
		&item.Percentage,
		&item.HasGoal,
		&item.Divergent,
		&semaphore,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Semaphore = domain.Semaphore(semaphore)
	return item, nil
}
