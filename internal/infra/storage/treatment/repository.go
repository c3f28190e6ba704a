package treatment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

var treatmentColumns = []string{"id", "name", "price", "duration_minutes"}

// Repository каталог процедур салона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр каталога процедур
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает процедуру по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Treatment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(treatmentColumns...).
		From("treatments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Treatment
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.Name, &t.Price, &t.DurationMinutes)
	if err == sql.ErrNoRows {
		return nil, ErrTreatmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan treatment: %v", ErrScanRow, err)
	}

	return &t, nil
}

// GetAll получает все процедуры каталога
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Treatment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(treatmentColumns...).
		From("treatments").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	treatments := make([]*domain.Treatment, 0)
	for rows.Next() {
		var t domain.Treatment
		if err := rows.Scan(&t.ID, &t.Name, &t.Price, &t.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		treatments = append(treatments, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return treatments, nil
}
