package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

// Коды ошибок postgres, которые репозиторий переводит в типизированные ошибки
const (
	pgUniqueViolation      = pq.ErrorCode("23505")
	pgForeignKeyViolation  = pq.ErrorCode("23503")
	pgExclusionViolation   = pq.ErrorCode("23P01")
	pgSerializationFailure = pq.ErrorCode("40001")
)

var bookingColumns = []string{
	"id",
	"customer_id",
	"hairdresser_id",
	"treatment_id",
	"start_time",
	"end_time",
	"message",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
// Читающие методы не имеют побочных эффектов; мутации оформляются
// через unit of work (NewUnit) и применяются явным Save
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBookingRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetAll получает все бронирования
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	return r.Find(ctx, domain.BookingFilter{})
}

// Find получает бронирования, удовлетворяющие фильтру
// Пустой фильтр возвращает полную коллекцию
func (r *Repository) Find(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("start_time ASC, id ASC")

	selectBuilder = applyFilter(selectBuilder, filter)

	// Внутри транзакции выборка дня парикмахера блокируется (FOR UPDATE),
	// чтобы конкурирующее бронирование дождалось коммита
	if dbmetrics.IsInTransaction(ctx) && filter.HairdresserID != nil && filter.From != nil && filter.To != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Find - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapConstraintError("Find - execute query", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Any проверяет существование хотя бы одного бронирования по фильтру
// Используется для проверок конфликтов без материализации строк
func (r *Repository) Any(ctx context.Context, filter domain.BookingFilter) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	innerBuilder := applyFilter(psqlbuilder.Select("1").From("bookings"), filter)

	innerQuery, args, err := innerBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Any - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (%s)", innerQuery)
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, mapConstraintError("Any - execute query", err)
	}

	return exists, nil
}

// GetByIDWithDetails получает бронирование вместе с клиентом, парикмахером
// и процедурой. Возвращает ErrBookingNotFound, если бронирование не
// принадлежит указанному клиенту, даже когда запись существует
func (r *Repository) GetByIDWithDetails(ctx context.Context, bookingID int64, customerID string) (*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsBuilder().
		Where(squirrel.Eq{"b.id": bookingID, "b.customer_id": customerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDWithDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapConstraintError("GetByIDWithDetails - execute query", err)
	}
	defer rows.Close()

	details, err := scanBookingDetails(rows)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrBookingNotFound
	}

	return details[0], nil
}

// GetWeekScheduleWithDetails получает расписание парикмахера на неделю:
// все бронирования, чей интервал пересекает [weekStart, weekStart+7d)
func (r *Repository) GetWeekScheduleWithDetails(ctx context.Context, hairdresserID string, weekStart time.Time) ([]*domain.BookingDetails, error) {
	weekEnd := weekStart.AddDate(0, 0, domain.DaysPerWeek)
	return r.scheduleWithDetails(ctx, "GetWeekScheduleWithDetails", hairdresserID, weekStart, weekEnd)
}

// GetMonthlyScheduleWithDetails получает расписание парикмахера на
// календарный месяц
func (r *Repository) GetMonthlyScheduleWithDetails(ctx context.Context, hairdresserID string, year int, month time.Month) ([]*domain.BookingDetails, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	return r.scheduleWithDetails(ctx, "GetMonthlyScheduleWithDetails", hairdresserID, monthStart, monthEnd)
}

func (r *Repository) scheduleWithDetails(ctx context.Context, op string, hairdresserID string, from, to time.Time) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsBuilder().
		Where(squirrel.Eq{"b.hairdresser_id": hairdresserID}).
		Where(squirrel.Lt{"b.start_time": to}).
		Where(squirrel.Gt{"b.end_time": from}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapConstraintError(op+" - execute query", err)
	}
	defer rows.Close()

	return scanBookingDetails(rows)
}

// applyFilter добавляет условия фильтра к запросу
func applyFilter(b squirrel.SelectBuilder, filter domain.BookingFilter) squirrel.SelectBuilder {
	if filter.CustomerID != nil {
		b = b.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.HairdresserID != nil {
		b = b.Where(squirrel.Eq{"hairdresser_id": *filter.HairdresserID})
	}
	if filter.TreatmentID != nil {
		b = b.Where(squirrel.Eq{"treatment_id": *filter.TreatmentID})
	}
	// Пересечение интервалов: start < To AND end > From (строгие неравенства,
	// граничные интервалы не пересекаются)
	if filter.To != nil {
		b = b.Where(squirrel.Lt{"start_time": *filter.To})
	}
	if filter.From != nil {
		b = b.Where(squirrel.Gt{"end_time": *filter.From})
	}
	if filter.ExcludeID != nil {
		b = b.Where(squirrel.NotEq{"id": *filter.ExcludeID})
	}
	return b
}

// detailsBuilder запрос бронирования с JOIN'ами связанных сущностей
func detailsBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"b.id",
		"b.customer_id",
		"b.hairdresser_id",
		"b.treatment_id",
		"b.start_time",
		"b.end_time",
		"b.message",
		"b.created_at",
		"b.updated_at",
		"c.id",
		"c.user_name",
		"c.role",
		"h.id",
		"h.user_name",
		"h.role",
		"t.id",
		"t.name",
		"t.price",
		"t.duration_minutes",
	).
		From("bookings b").
		Join("users c ON b.customer_id = c.id").
		Join("users h ON b.hairdresser_id = h.id").
		Join("treatments t ON b.treatment_id = t.id").
		OrderBy("b.start_time ASC, b.id ASC")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingRow(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.HairdresserID,
		&booking.TreatmentID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Message,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// scanBookingDetails сканирует строки JOIN-запроса
func scanBookingDetails(rows *sql.Rows) ([]*domain.BookingDetails, error) {
	details := make([]*domain.BookingDetails, 0)

	for rows.Next() {
		var d domain.BookingDetails
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&d.ID,
			&d.CustomerID,
			&d.HairdresserID,
			&d.TreatmentID,
			&d.StartTime,
			&d.EndTime,
			&d.Message,
			&createdAt,
			&updatedAt,
			&d.Customer.ID,
			&d.Customer.UserName,
			&d.Customer.Role,
			&d.Hairdresser.ID,
			&d.Hairdresser.UserName,
			&d.Hairdresser.Role,
			&d.Treatment.ID,
			&d.Treatment.Name,
			&d.Treatment.Price,
			&d.Treatment.DurationMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookingDetails - scan row: %v", ErrScanRow, err)
		}

		d.CreatedAt = createdAt.Time
		d.UpdatedAt = updatedAt.Time

		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookingDetails - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}

// mapConstraintError переводит ошибки ограничений postgres в типизированные
// ошибки репозитория
func mapConstraintError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgExclusionViolation, pgUniqueViolation:
			return fmt.Errorf("%w: %s: %v", ErrSlotConflict, op, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s: %v", ErrForeignKeyViolation, op, err)
		case pgSerializationFailure:
			// Цепочка pq-ошибки сохраняется (%w), чтобы менеджер транзакций
			// распознал код 40001 и повторил транзакцию
			return fmt.Errorf("%w: %s: %w", ErrSerializationFailure, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
