package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/user"
)

type fakeUnit struct {
	deleted []*domain.Booking
	saveErr error
}

func (u *fakeUnit) Add(b *domain.Booking)    {}
func (u *fakeUnit) Update(b *domain.Booking) {}
func (u *fakeUnit) Delete(b *domain.Booking) { u.deleted = append(u.deleted, b) }
func (u *fakeUnit) Len() int                 { return len(u.deleted) }

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

func (m *mockBookingRepo) GetByIDWithDetails(ctx context.Context, bookingID int64, customerID string) (*domain.BookingDetails, error) {
	args := m.Called(ctx, bookingID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetails), args.Error(1)
}

func (m *mockBookingRepo) GetWeekScheduleWithDetails(ctx context.Context, hairdresserID string, weekStart time.Time) ([]*domain.BookingDetails, error) {
	args := m.Called(ctx, hairdresserID, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookingDetails), args.Error(1)
}

func (m *mockBookingRepo) GetMonthlyScheduleWithDetails(ctx context.Context, hairdresserID string, year int, month time.Month) ([]*domain.BookingDetails, error) {
	args := m.Called(ctx, hairdresserID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookingDetails), args.Error(1)
}

func (m *mockBookingRepo) NewUnit() bookingRepo.UnitOfWork {
	return m.unit
}

type mockUserDirectory struct {
	mock.Mock
}

func (m *mockUserDirectory) GetHairdresser(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *mockBookingRepo, *mockUserDirectory) {
	repo := &mockBookingRepo{unit: &fakeUnit{}}
	users := new(mockUserDirectory)
	svc := NewService(repo, users, fakeTxManager{}, nopLogger{})
	return svc, repo, users
}

func ownBooking() *domain.Booking {
	return &domain.Booking{
		ID:            7,
		CustomerID:    "cust-1",
		HairdresserID: "hd-1",
		TreatmentID:   3,
		StartTime:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
	}
}

func ownBookingDetails() *domain.BookingDetails {
	return &domain.BookingDetails{
		Booking:     *ownBooking(),
		Customer:    domain.User{ID: "cust-1", UserName: "Анна", Role: domain.RoleCustomer},
		Hairdresser: domain.User{ID: "hd-1", UserName: "Мария", Role: domain.RoleHairdresser},
		Treatment:   domain.Treatment{ID: 3, Name: "Стрижка", Price: 1500, DurationMinutes: 60},
	}
}

func TestGetByID(t *testing.T) {
	svc, repo, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(7)).Return(ownBooking(), nil)
	repo.On("GetByIDWithDetails", mock.Anything, int64(7), "cust-1").Return(ownBookingDetails(), nil)

	resp, err := svc.GetByID(context.Background(), 7, "cust-1")
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Анна", resp.CustomerName)
	assert.Equal(t, "Мария", resp.HairdresserName)
	assert.Equal(t, "Стрижка", resp.TreatmentName)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, repo, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := svc.GetByID(context.Background(), 99, "cust-1")
	require.ErrorIs(t, err, ErrBookingNotFound)
}

// Существующее, но чужое бронирование дает 403, а не 404
func TestGetByID_ForeignBooking(t *testing.T) {
	svc, repo, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(7)).Return(ownBooking(), nil)

	_, err := svc.GetByID(context.Background(), 7, "cust-2")
	require.ErrorIs(t, err, ErrAccessDenied)
	repo.AssertNotCalled(t, "GetByIDWithDetails", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel(t *testing.T) {
	svc, repo, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(7)).Return(ownBooking(), nil)

	resp, err := svc.Cancel(context.Background(), "cust-1", 7)
	require.NoError(t, err)

	// Возвращается снимок удаленного бронирования
	assert.Equal(t, int64(7), resp.ID)
	require.Len(t, repo.unit.deleted, 1)
	assert.Equal(t, int64(7), repo.unit.deleted[0].ID)
}

func TestCancel_ForeignBooking(t *testing.T) {
	svc, repo, _ := newTestService()

	repo.On("GetByID", mock.Anything, int64(7)).Return(ownBooking(), nil)

	_, err := svc.Cancel(context.Background(), "cust-2", 7)
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.unit.deleted)
}

func TestCancel_DisappearedDuringDelete(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.unit.saveErr = bookingRepo.ErrBookingNotFound

	repo.On("GetByID", mock.Anything, int64(7)).Return(ownBooking(), nil)

	_, err := svc.Cancel(context.Background(), "cust-1", 7)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetWeekSchedule(t *testing.T) {
	svc, repo, users := newTestService()

	weekStart := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	users.On("GetHairdresser", mock.Anything, "hd-1").
		Return(&domain.User{ID: "hd-1", Role: domain.RoleHairdresser}, nil)
	repo.On("GetWeekScheduleWithDetails", mock.Anything, "hd-1", weekStart).
		Return([]*domain.BookingDetails{ownBookingDetails()}, nil)

	resp, err := svc.GetWeekSchedule(context.Background(), "hd-1", weekStart)
	require.NoError(t, err)

	assert.Equal(t, "hd-1", resp.HairdresserID)
	assert.Equal(t, weekStart, resp.PeriodStart)
	assert.Equal(t, weekStart.AddDate(0, 0, 7), resp.PeriodEnd)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Мария", resp.Bookings[0].HairdresserName)
}

func TestGetWeekSchedule_HairdresserNotFound(t *testing.T) {
	svc, _, users := newTestService()

	users.On("GetHairdresser", mock.Anything, "ghost").
		Return(nil, userRepo.ErrUserNotFound)

	_, err := svc.GetWeekSchedule(context.Background(), "ghost", time.Now())
	require.ErrorIs(t, err, ErrHairdresserNotFound)
}

func TestGetMonthSchedule(t *testing.T) {
	svc, repo, users := newTestService()

	users.On("GetHairdresser", mock.Anything, "hd-1").
		Return(&domain.User{ID: "hd-1", Role: domain.RoleHairdresser}, nil)
	repo.On("GetMonthlyScheduleWithDetails", mock.Anything, "hd-1", 2026, time.September).
		Return([]*domain.BookingDetails{}, nil)

	resp, err := svc.GetMonthSchedule(context.Background(), "hd-1", 2026, time.September)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), resp.PeriodStart)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), resp.PeriodEnd)
	assert.Empty(t, resp.Bookings)
}

func TestGetMonthSchedule_InvalidMonth(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetMonthSchedule(context.Background(), "hd-1", 2026, time.Month(13))
	require.ErrorIs(t, err, ErrInvalidInput)
}
