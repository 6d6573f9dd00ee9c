package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/interaction-service/internal/domain"
)

// StaffRepository encapsulates RSO persistence. Rows are never physically
// deleted; Deactivate flips is_active so interaction references stay valid.
type StaffRepository interface {
	ListActive(ctx context.Context) ([]domain.StaffMember, error)
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	Create(ctx context.Context, member *domain.StaffMember) error
	Update(ctx context.Context, member *domain.StaffMember) error
	Deactivate(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, members []domain.StaffMember) error
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) ListActive(ctx context.Context) ([]domain.StaffMember, error) {
	const query = `
        SELECT id, name, employee_code, phone, is_active, created_at, updated_at
        FROM rsos WHERE is_active=TRUE ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffMember
	for rows.Next() {
		var member domain.StaffMember
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.EmployeeCode,
			&member.Phone,
			&member.Active,
			&member.CreatedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, member)
	}
	return result, rows.Err()
}

func (r *staffRepository) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	const query = `
        SELECT id, name, employee_code, phone, is_active, created_at, updated_at
        FROM rsos WHERE id=$1`

	var member domain.StaffMember
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.EmployeeCode,
		&member.Phone,
		&member.Active,
		&member.CreatedAt,
		&member.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *staffRepository) Create(ctx context.Context, member *domain.StaffMember) error {
	const query = `
        INSERT INTO rsos (name, employee_code, phone, is_active)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		member.Name,
		member.EmployeeCode,
		member.Phone,
		member.Active,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
}

func (r *staffRepository) Update(ctx context.Context, member *domain.StaffMember) error {
	const query = `
        UPDATE rsos SET name=$1, employee_code=$2, phone=$3, is_active=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		member.Name,
		member.EmployeeCode,
		member.Phone,
		member.Active,
		member.ID,
	).Scan(&member.CreatedAt, &member.UpdatedAt)
	if err != nil {
		return err
	}
	return nil
}

func (r *staffRepository) Deactivate(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE rsos SET is_active=FALSE, updated_at=NOW() WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM rsos`).Scan(&count)
	return count, err
}

func (r *staffRepository) CreateBatch(ctx context.Context, members []domain.StaffMember) error {
	batch := &pgx.Batch{}
	for i := range members {
		batch.Queue(`INSERT INTO rsos (name, employee_code, phone, is_active) VALUES ($1,$2,$3,$4)`,
			members[i].Name, members[i].EmployeeCode, members[i].Phone, members[i].Active)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}
