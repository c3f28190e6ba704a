package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotConflict возвращается, когда ограничение БД на пересечение
	// интервалов отклонило запись (страховка от гонки двух бронирований)
	ErrSlotConflict = errors.New("booking.repository: overlapping booking interval")

	// ErrForeignKeyViolation возвращается при ссылке на несуществующего
	// пользователя или процедуру
	ErrForeignKeyViolation = errors.New("booking.repository: referenced entity does not exist")

	// ErrSerializationFailure возвращается при конфликте сериализуемых
	// транзакций (pq 40001). Менеджер транзакций повторяет транзакцию,
	// поэтому ошибку нужно пробрасывать наверх без переупаковки
	ErrSerializationFailure = errors.New("booking.repository: transaction serialization conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrNothingStaged возвращается при попытке сохранить пустой unit of work
	ErrNothingStaged = errors.New("booking.repository: no staged mutations to save")
)
