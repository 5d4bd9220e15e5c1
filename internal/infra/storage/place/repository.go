package place

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
	"github.com/Wong-WS/swim-scheduler/pkg/dbmetrics"
	"github.com/Wong-WS/swim-scheduler/pkg/psqlbuilder"
)

// pgForeignKeyViolation код ошибки PostgreSQL "foreign_key_violation"
const pgForeignKeyViolation = "23503"

// Repository репозиторий для работы с точками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория точек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую точку
func (r *Repository) Create(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("places").
		Columns("id", "name", "area", "buffer_time_minutes").
		Values(place.ID, place.Name, place.Area, place.BufferTimeMinutes).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	place.CreatedAt = createdAt.Time
	place.UpdatedAt = updatedAt.Time

	return place, nil
}

// GetByID получает точку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "area", "buffer_time_minutes", "created_at", "updated_at",
	).
		From("places").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	place, err := scanPlace(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPlaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan place: %v", ErrScanRow, err)
	}

	return place, nil
}

// List получает все точки, отсортированные по району и названию
func (r *Repository) List(ctx context.Context) ([]*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "area", "buffer_time_minutes", "created_at", "updated_at",
	).
		From("places").
		OrderBy("area ASC", "name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	places := make([]*domain.Place, 0)
	for rows.Next() {
		var place domain.Place
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&place.ID,
			&place.Name,
			&place.Area,
			&place.BufferTimeMinutes,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		place.CreatedAt = createdAt.Time
		place.UpdatedAt = updatedAt.Time
		places = append(places, &place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return places, nil
}

// Update обновляет атрибуты точки
func (r *Repository) Update(ctx context.Context, place *domain.Place) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("places").
		Set("name", place.Name).
		Set("area", place.Area).
		Set("buffer_time_minutes", place.BufferTimeMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": place.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPlaceNotFound
	}

	return nil
}

// Delete удаляет точку. Расписание точки удаляется каскадно,
// удаление точки с бронированиями запрещено внешним ключом.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("places").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation {
			return ErrPlaceHasBookings
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPlaceNotFound
	}

	return nil
}

func scanPlace(row *sql.Row) (*domain.Place, error) {
	var place domain.Place
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&place.ID,
		&place.Name,
		&place.Area,
		&place.BufferTimeMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	place.CreatedAt = createdAt.Time
	place.UpdatedAt = updatedAt.Time

	return &place, nil
}
