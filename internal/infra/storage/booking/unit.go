package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

type opKind int

const (
	opAdd opKind = iota
	opUpdate
	opDelete
)

type stagedOp struct {
	kind    opKind
	booking *domain.Booking
}

// Unit unit of work над бронированиями: мутации накапливаются и становятся
// видимыми в хранилище только после Save
//
// Атомарность батча обеспечивает транзакция в контексте: сервисный слой
// всегда вызывает Save внутри txmanager.Do / DoSerializable
type Unit struct {
	repo *Repository
	ops  []stagedOp
}

var _ UnitOfWork = (*Unit)(nil)

// NewUnit создает пустой unit of work
func (r *Repository) NewUnit() UnitOfWork {
	return &Unit{repo: r}
}

// Add ставит создание бронирования в очередь
// Сгенерированный ID записывается в переданную структуру после Save
func (u *Unit) Add(b *domain.Booking) {
	u.ops = append(u.ops, stagedOp{kind: opAdd, booking: b})
}

// Update ставит обновление бронирования в очередь
func (u *Unit) Update(b *domain.Booking) {
	u.ops = append(u.ops, stagedOp{kind: opUpdate, booking: b})
}

// Delete ставит удаление бронирования в очередь
func (u *Unit) Delete(b *domain.Booking) {
	u.ops = append(u.ops, stagedOp{kind: opDelete, booking: b})
}

// Len возвращает количество накопленных мутаций
func (u *Unit) Len() int {
	return len(u.ops)
}

// Save применяет накопленные мутации в порядке добавления
// Нарушения ограничений БД переводятся в ErrSlotConflict /
// ErrForeignKeyViolation; после успешного Save очередь пуста
func (u *Unit) Save(ctx context.Context) error {
	if len(u.ops) == 0 {
		return ErrNothingStaged
	}

	executor := dbmetrics.GetExecutor(ctx, u.repo.db)

	for _, op := range u.ops {
		var err error
		switch op.kind {
		case opAdd:
			err = u.insert(ctx, executor, op.booking)
		case opUpdate:
			err = u.update(ctx, executor, op.booking)
		case opDelete:
			err = u.delete(ctx, executor, op.booking)
		}
		if err != nil {
			return err
		}
	}

	u.ops = nil
	return nil
}

func (u *Unit) insert(ctx context.Context, executor DBExecutor, b *domain.Booking) error {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_id",
			"hairdresser_id",
			"treatment_id",
			"start_time",
			"end_time",
			"message",
		).
		Values(
			b.CustomerID,
			b.HairdresserID,
			b.TreatmentID,
			b.StartTime,
			b.EndTime,
			b.Message,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return mapConstraintError("Save - execute insert", err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return nil
}

func (u *Unit) update(ctx context.Context, executor DBExecutor, b *domain.Booking) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("treatment_id", b.TreatmentID).
		Set("start_time", b.StartTime).
		Set("end_time", b.EndTime).
		Set("message", b.Message).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapConstraintError("Save - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Save - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (u *Unit) delete(ctx context.Context, executor DBExecutor, b *domain.Booking) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapConstraintError("Save - execute delete", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Save - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
