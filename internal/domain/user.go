package domain

// UserRole роль пользователя в салоне
type UserRole string

const (
	RoleCustomer    UserRole = "customer"
	RoleHairdresser UserRole = "hairdresser"
)

// User пользователь (клиент или парикмахер)
// Владеет записями отдельное хранилище, бронирования ссылаются по ID
type User struct {
	ID       string
	UserName string
	Role     UserRole
}

// IsHairdresser проверяет, что пользователь - парикмахер
func (u *User) IsHairdresser() bool {
	return u.Role == RoleHairdresser
}
