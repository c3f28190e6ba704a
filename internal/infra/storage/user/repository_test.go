package user

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

const selectUserSQL = "SELECT id, user_name, role FROM users WHERE id = $1"

func setupMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewRepository(db), mock, func() { db.Close() }
}

func TestGetByID(t *testing.T) {
	repo, mock, cleanup := setupMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL)).
		WithArgs("cust-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "role"}).
			AddRow("cust-1", "Анна", "customer"))

	u, err := repo.GetByID(context.Background(), "cust-1")
	require.NoError(t, err)
	require.Equal(t, "Анна", u.UserName)
	require.Equal(t, domain.RoleCustomer, u.Role)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetHairdresser(t *testing.T) {
	repo, mock, cleanup := setupMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL)).
		WithArgs("hd-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "role"}).
			AddRow("hd-1", "Мария", "hairdresser"))

	u, err := repo.GetHairdresser(context.Background(), "hd-1")
	require.NoError(t, err)
	require.True(t, u.IsHairdresser())
}

// Клиент с точки зрения поиска парикмахера не существует
func TestGetHairdresser_WrongRole(t *testing.T) {
	repo, mock, cleanup := setupMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL)).
		WithArgs("cust-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "role"}).
			AddRow("cust-1", "Анна", "customer"))

	_, err := repo.GetHairdresser(context.Background(), "cust-1")
	require.ErrorIs(t, err, ErrUserNotFound)
}
