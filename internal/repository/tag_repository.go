package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/interaction-service/internal/domain"
)

// TagRepository encapsulates the requirement-tag catalog. The catalog is
// read-only through the public surface; writes happen only during seeding.
type TagRepository interface {
	ListActive(ctx context.Context) ([]domain.RequirementTag, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, tags []domain.RequirementTag) error
}

type tagRepository struct {
	pool *pgxpool.Pool
}

// NewTagRepository instantiates repository.
func NewTagRepository(pool *pgxpool.Pool) TagRepository {
	return &tagRepository{pool: pool}
}

func (r *tagRepository) ListActive(ctx context.Context) ([]domain.RequirementTag, error) {
	const query = `
        SELECT id, name, category, is_active, sort_order
        FROM requirement_tags WHERE is_active=TRUE ORDER BY sort_order`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.RequirementTag
	for rows.Next() {
		var tag domain.RequirementTag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Category, &tag.Active, &tag.SortOrder); err != nil {
			return nil, err
		}
		result = append(result, tag)
	}
	return result, rows.Err()
}

func (r *tagRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM requirement_tags`).Scan(&count)
	return count, err
}

func (r *tagRepository) CreateBatch(ctx context.Context, tags []domain.RequirementTag) error {
	batch := &pgx.Batch{}
	for i := range tags {
		batch.Queue(`INSERT INTO requirement_tags (name, category, is_active, sort_order) VALUES ($1,$2,$3,$4)`,
			tags[i].Name, tags[i].Category, tags[i].Active, tags[i].SortOrder)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}
