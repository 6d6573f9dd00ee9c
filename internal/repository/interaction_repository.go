package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/interaction-service/internal/domain"
)

// DefaultListLimit bounds listings when the caller supplies no limit.
const DefaultListLimit = 50

// InteractionFilter captures list/count parameters. Nil fields impose no
// constraint; set fields combine with AND.
type InteractionFilter struct {
	Status       *domain.InteractionStatus
	Type         *domain.InteractionType
	AssignedToID *int64
	Limit        int
	Offset       int
}

// InteractionPatch describes a partial update. Nil value fields are left
// untouched; Clear* flags write NULL; a non-nil Tags pointer replaces the
// stored tag list (an empty slice re-encodes as an empty array).
type InteractionPatch struct {
	CustomerName       *string
	ClearCustomerName  bool
	CustomerPhone      *string
	ClearCustomerPhone bool
	Type               *domain.InteractionType
	Status             *domain.InteractionStatus
	Requirement        *string
	Tags               *[]string
	Notes              *string
	ClearNotes         bool
	AssignedToID       *int64
	ClearAssignedTo    bool
}

// InteractionRepository encapsulates interaction persistence.
type InteractionRepository interface {
	Create(ctx context.Context, interaction *domain.Interaction) error
	GetByID(ctx context.Context, id int64) (*domain.Interaction, error)
	ListWithFilter(ctx context.Context, filter InteractionFilter) ([]domain.Interaction, error)
	CountWithFilter(ctx context.Context, filter InteractionFilter) (int64, error)
	UpdatePartial(ctx context.Context, id int64, patch InteractionPatch) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status domain.InteractionStatus) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type interactionRepository struct {
	pool *pgxpool.Pool
}

// NewInteractionRepository instantiates repository.
func NewInteractionRepository(pool *pgxpool.Pool) InteractionRepository {
	return &interactionRepository{pool: pool}
}

const interactionColumns = `i.id, i.customer_name, i.customer_phone, i.type, i.status,
               i.requirement, i.requirement_tags, i.notes, i.assigned_to_id, i.created_by_id,
               i.interaction_date, i.created_at, i.updated_at, r.name AS assigned_to_name`

func (r *interactionRepository) Create(ctx context.Context, interaction *domain.Interaction) error {
	const query = `
        INSERT INTO interactions (customer_name, customer_phone, type, status, requirement,
            requirement_tags, notes, assigned_to_id, created_by_id, interaction_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		interaction.CustomerName,
		interaction.CustomerPhone,
		interaction.Type,
		interaction.Status,
		interaction.Requirement,
		encodeTagsColumn(interaction.RequirementTags),
		interaction.Notes,
		interaction.AssignedToID,
		interaction.CreatedByID,
		interaction.InteractionDate,
	).Scan(&interaction.ID, &interaction.CreatedAt, &interaction.UpdatedAt)
}

func (r *interactionRepository) GetByID(ctx context.Context, id int64) (*domain.Interaction, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM interactions i
        LEFT JOIN rsos r ON r.id = i.assigned_to_id
        WHERE i.id=$1`, interactionColumns)

	var (
		interaction domain.Interaction
		rawTags     *string
	)
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&interaction.ID,
		&interaction.CustomerName,
		&interaction.CustomerPhone,
		&interaction.Type,
		&interaction.Status,
		&interaction.Requirement,
		&rawTags,
		&interaction.Notes,
		&interaction.AssignedToID,
		&interaction.CreatedByID,
		&interaction.InteractionDate,
		&interaction.CreatedAt,
		&interaction.UpdatedAt,
		&interaction.AssignedToName,
	); err != nil {
		return nil, err
	}
	interaction.RequirementTags = domain.DecodeTags(rawTags)
	return &interaction, nil
}

func (r *interactionRepository) ListWithFilter(ctx context.Context, filter InteractionFilter) ([]domain.Interaction, error) {
	clauses, args := filterClauses(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
        SELECT %s
        FROM interactions i
        LEFT JOIN rsos r ON r.id = i.assigned_to_id
        WHERE %s
        ORDER BY i.created_at DESC
        LIMIT %d OFFSET %d`, interactionColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInteractions(rows)
}

func (r *interactionRepository) CountWithFilter(ctx context.Context, filter InteractionFilter) (int64, error) {
	clauses, args := filterClauses(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM interactions i WHERE %s`, strings.Join(clauses, " AND "))

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *interactionRepository) UpdatePartial(ctx context.Context, id int64, patch InteractionPatch) error {
	sets := []string{"updated_at=NOW()"}
	args := []any{}

	setValue := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	setNull := func(column string) {
		sets = append(sets, fmt.Sprintf("%s=NULL", column))
	}

	switch {
	case patch.ClearCustomerName:
		setNull("customer_name")
	case patch.CustomerName != nil:
		setValue("customer_name", *patch.CustomerName)
	}
	switch {
	case patch.ClearCustomerPhone:
		setNull("customer_phone")
	case patch.CustomerPhone != nil:
		setValue("customer_phone", *patch.CustomerPhone)
	}
	if patch.Type != nil {
		setValue("type", *patch.Type)
	}
	if patch.Status != nil {
		setValue("status", *patch.Status)
	}
	if patch.Requirement != nil {
		setValue("requirement", *patch.Requirement)
	}
	if patch.Tags != nil {
		setValue("requirement_tags", domain.EncodeTags(*patch.Tags))
	}
	switch {
	case patch.ClearNotes:
		setNull("notes")
	case patch.Notes != nil:
		setValue("notes", *patch.Notes)
	}
	switch {
	case patch.ClearAssignedTo:
		setNull("assigned_to_id")
	case patch.AssignedToID != nil:
		setValue("assigned_to_id", *patch.AssignedToID)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE interactions SET %s WHERE id=$%d", strings.Join(sets, ", "), len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *interactionRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM interactions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *interactionRepository) CountByStatus(ctx context.Context, status domain.InteractionStatus) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM interactions WHERE status=$1`, status).Scan(&count)
	return count, err
}

func (r *interactionRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM interactions WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}

func filterClauses(filter InteractionFilter) ([]string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("i.status=$%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		clauses = append(clauses, fmt.Sprintf("i.type=$%d", len(args)))
	}
	if filter.AssignedToID != nil {
		args = append(args, *filter.AssignedToID)
		clauses = append(clauses, fmt.Sprintf("i.assigned_to_id=$%d", len(args)))
	}
	return clauses, args
}

func scanInteractions(rows pgx.Rows) ([]domain.Interaction, error) {
	var result []domain.Interaction
	for rows.Next() {
		var (
			interaction domain.Interaction
			rawTags     *string
		)
		if err := rows.Scan(
			&interaction.ID,
			&interaction.CustomerName,
			&interaction.CustomerPhone,
			&interaction.Type,
			&interaction.Status,
			&interaction.Requirement,
			&rawTags,
			&interaction.Notes,
			&interaction.AssignedToID,
			&interaction.CreatedByID,
			&interaction.InteractionDate,
			&interaction.CreatedAt,
			&interaction.UpdatedAt,
			&interaction.AssignedToName,
		); err != nil {
			return nil, err
		}
		interaction.RequirementTags = domain.DecodeTags(rawTags)
		result = append(result, interaction)
	}
	return result, rows.Err()
}

// encodeTagsColumn keeps the stored column NULL when no tags were supplied,
// matching how rows have historically been written.
func encodeTagsColumn(tags []string) *string {
	if len(tags) == 0 {
		return nil
	}
	encoded := domain.EncodeTags(tags)
	return &encoded
}
