package book_appointment

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
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

type fakeUnit struct {
	added   []*domain.Booking
	saveErr error
}

func (u *fakeUnit) Add(b *domain.Booking)    { u.added = append(u.added, b) }
func (u *fakeUnit) Update(b *domain.Booking) {}
func (u *fakeUnit) Delete(b *domain.Booking) {}
func (u *fakeUnit) Len() int                 { return len(u.added) }

func (u *fakeUnit) Save(ctx context.Context) error {
	if u.saveErr != nil {
		return u.saveErr
	}
	for i, b := range u.added {
		b.ID = int64(100 + i)
	}
	return nil
}

type mockBookingRepo struct {
	mock.Mock
	unit *fakeUnit
}

func (m *mockBookingRepo) Any(ctx context.Context, filter domain.BookingFilter) (bool, error) {
	args := m.Called(ctx, filter)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) NewUnit() bookingRepo.UnitOfWork {
	return m.unit
}

type mockUserDirectory struct {
	mock.Mock
}

func (m *mockUserDirectory) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserDirectory) GetHairdresser(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
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

// fakeTxManager выполняет функцию без реальной транзакции
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
	users      *mockUserDirectory
	treatments *mockTreatmentCatalog
	uc         *UseCase
}

func newFixture() *fixture {
	bookings := &mockBookingRepo{unit: &fakeUnit{}}
	users := new(mockUserDirectory)
	treatments := new(mockTreatmentCatalog)

	workDay, _ := domain.ParseWorkDay("09:00", "17:00")
	uc := NewUseCase(bookings, users, treatments, fakeTxManager{}, workDay, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)}

	return &fixture{bookings: bookings, users: users, treatments: treatments, uc: uc}
}

func (f *fixture) expectActors() {
	f.users.On("GetByID", mock.Anything, "cust-1").
		Return(&domain.User{ID: "cust-1", Role: domain.RoleCustomer}, nil)
	f.users.On("GetHairdresser", mock.Anything, "hd-1").
		Return(&domain.User{ID: "hd-1", Role: domain.RoleHairdresser}, nil)
	f.treatments.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Treatment{ID: 3, Name: "Стрижка", Price: 1500, DurationMinutes: 60}, nil)
}

func validRequest() *Request {
	return &Request{
		CustomerID:    "cust-1",
		HairdresserID: "hd-1",
		TreatmentID:   3,
		StartTime:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Message:       ptr.Ptr("пожелание"),
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()
	f.expectActors()

	f.bookings.On("Any", mock.Anything, mock.MatchedBy(func(filter domain.BookingFilter) bool {
		return filter.HairdresserID != nil && *filter.HairdresserID == "hd-1" &&
			filter.From != nil && filter.From.Equal(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)) &&
			filter.To != nil && filter.To.Equal(time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC))
	})).Return(false, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "cust-1", resp.CustomerID)
	assert.Equal(t, "hd-1", resp.HairdresserID)
	// Конец интервала вычисляется из длительности процедуры
	assert.Equal(t, time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC), resp.EndTime)
	assert.Equal(t, "Стрижка", resp.TreatmentName)
	assert.Equal(t, 1500.0, resp.TreatmentPrice)

	f.bookings.AssertExpectations(t)
}

func TestExecute_SlotTaken(t *testing.T) {
	f := newFixture()
	f.expectActors()

	f.bookings.On("Any", mock.Anything, mock.Anything).Return(true, nil)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.bookings.unit.added)
}

// Гонка: проверка прошла, но ограничение БД отклонило вставку
func TestExecute_SlotTakenByConstraint(t *testing.T) {
	f := newFixture()
	f.expectActors()
	f.bookings.unit.saveErr = bookingRepo.ErrSlotConflict

	f.bookings.On("Any", mock.Anything, mock.Anything).Return(false, nil)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotTaken)
}

// Конфликт сериализации не превращается в ErrInternal: он доходит до
// менеджера транзакций, который повторяет транзакцию
func TestExecute_SerializationConflictPropagated(t *testing.T) {
	f := newFixture()
	f.expectActors()

	f.bookings.On("Any", mock.Anything, mock.Anything).
		Return(false, bookingRepo.ErrSerializationFailure)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, bookingRepo.ErrSerializationFailure)
	require.NotErrorIs(t, err, ErrInternal)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	f := newFixture()

	f.users.On("GetByID", mock.Anything, "cust-1").
		Return(nil, userRepo.ErrUserNotFound)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_HairdresserNotFound(t *testing.T) {
	f := newFixture()

	f.users.On("GetByID", mock.Anything, "cust-1").
		Return(&domain.User{ID: "cust-1", Role: domain.RoleCustomer}, nil)
	f.users.On("GetHairdresser", mock.Anything, "hd-1").
		Return(nil, userRepo.ErrUserNotFound)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrHairdresserNotFound)
}

func TestExecute_StartInPast(t *testing.T) {
	f := newFixture()
	f.expectActors()

	req := validRequest()
	req.StartTime = time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	f := newFixture()
	f.expectActors()

	// 16:30 + 60 минут выходит за закрытие в 17:00
	req := validRequest()
	req.StartTime = time.Date(2026, 9, 1, 16, 30, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture()

	// Клиент не может забронировать сам себя
	req := validRequest()
	req.HairdresserID = req.CustomerID
	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)

	// Слишком длинное сообщение
	long := make([]byte, domain.MaxMessageLength+1)
	for i := range long {
		long[i] = 'a'
	}
	req = validRequest()
	req.Message = ptr.Ptr(string(long))
	_, err = f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}
