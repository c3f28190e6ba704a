package rebook_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

type fakeUnit struct {
	updated []*domain.Booking
	saveErr error
}

func (u *fakeUnit) Add(b *domain.Booking)    {}
func (u *fakeUnit) Update(b *domain.Booking) { u.updated = append(u.updated, b) }
func (u *fakeUnit) Delete(b *domain.Booking) {}
func (u *fakeUnit) Len() int                 { return len(u.updated) }

func (u *fakeUnit) Save(ctx context.Context) error {
	return u.saveErr
}

type mockBookingRepo struct {
	mock.Mock
	unit *fakeUnit
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Any(ctx context.Context, filter domain.BookingFilter) (bool, error) {
	args := m.Called(ctx, filter)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) NewUnit() bookingRepo.UnitOfWork {
	return m.unit
}

type mockTreatmentCatalog struct {
	mock.Mock
}

func (m *mockTreatmentCatalog) GetByID(ctx context.Context, id int64) (*domain.Treatment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Treatment), args.Error(1)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	bookings   *mockBookingRepo
	treatments *mockTreatmentCatalog
	uc         *UseCase
}

func newFixture() *fixture {
	bookings := &mockBookingRepo{unit: &fakeUnit{}}
	treatments := new(mockTreatmentCatalog)

	workDay, _ := domain.ParseWorkDay("09:00", "17:00")
	uc := NewUseCase(bookings, treatments, fakeTxManager{}, workDay, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)}

	return &fixture{bookings: bookings, treatments: treatments, uc: uc}
}

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            7,
		CustomerID:    "cust-1",
		HairdresserID: "hd-1",
		TreatmentID:   3,
		StartTime:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(existingBooking(), nil)
	f.treatments.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Treatment{ID: 3, Name: "Стрижка", Price: 1500, DurationMinutes: 60}, nil)

	// Переносимое бронирование исключается из проверки конфликта
	f.bookings.On("Any", mock.Anything, mock.MatchedBy(func(filter domain.BookingFilter) bool {
		return filter.ExcludeID != nil && *filter.ExcludeID == int64(7) &&
			filter.HairdresserID != nil && *filter.HairdresserID == "hd-1"
	})).Return(false, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		BookingID:  7,
		StartTime:  time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC), resp.StartTime)
	assert.Equal(t, time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC), resp.EndTime)
	require.Len(t, f.bookings.unit.updated, 1)

	f.bookings.AssertExpectations(t)
}

func TestExecute_ChangeTreatment(t *testing.T) {
	f := newFixture()

	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(existingBooking(), nil)
	// Запрошена другая процедура - длительность берется из нее
	f.treatments.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Treatment{ID: 5, Name: "Окрашивание", Price: 4000, DurationMinutes: 120}, nil)
	f.bookings.On("Any", mock.Anything, mock.Anything).Return(false, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		CustomerID:  "cust-1",
		BookingID:   7,
		TreatmentID: ptr.Ptr(int64(5)),
		StartTime:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.TreatmentID)
	assert.Equal(t, time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC), resp.EndTime)
	assert.Equal(t, "Окрашивание", resp.TreatmentName)
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture()

	f.bookings.On("GetByID", mock.Anything, int64(99)).
		Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		BookingID:  99,
		StartTime:  time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_ForeignBooking(t *testing.T) {
	f := newFixture()

	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(existingBooking(), nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: "cust-2",
		BookingID:  7,
		StartTime:  time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, f.bookings.unit.updated)
}

func TestExecute_NewSlotTaken(t *testing.T) {
	f := newFixture()

	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(existingBooking(), nil)
	f.treatments.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Treatment{ID: 3, DurationMinutes: 60}, nil)
	f.bookings.On("Any", mock.Anything, mock.Anything).Return(true, nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		BookingID:  7,
		StartTime:  time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.bookings.unit.updated)
}

// Конфликт сериализации не превращается в ErrInternal: он доходит до
// менеджера транзакций, который повторяет транзакцию
func TestExecute_SerializationConflictPropagated(t *testing.T) {
	f := newFixture()

	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(existingBooking(), nil)
	f.treatments.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Treatment{ID: 3, DurationMinutes: 60}, nil)
	f.bookings.On("Any", mock.Anything, mock.Anything).
		Return(false, bookingRepo.ErrSerializationFailure)

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		BookingID:  7,
		StartTime:  time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, bookingRepo.ErrSerializationFailure)
	require.NotErrorIs(t, err, ErrInternal)
}

// Гонка: проверка прошла, но ограничение БД отклонило обновление
func TestExecute_SlotTakenByConstraint(t *testing.T) {
	f := newFixture()
	f.bookings.unit.saveErr = bookingRepo.ErrSlotConflict

	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(existingBooking(), nil)
	f.treatments.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Treatment{ID: 3, DurationMinutes: 60}, nil)
	f.bookings.On("Any", mock.Anything, mock.Anything).Return(false, nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		BookingID:  7,
		StartTime:  time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_StartInPast(t *testing.T) {
	f := newFixture()

	f.bookings.On("GetByID", mock.Anything, int64(7)).Return(existingBooking(), nil)
	f.treatments.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Treatment{ID: 3, DurationMinutes: 60}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		BookingID:  7,
		StartTime:  time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrDateInPast)
}
