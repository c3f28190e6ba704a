package treatment

import "errors"

var (
	// ErrTreatmentNotFound возвращается, когда процедура не найдена
	ErrTreatmentNotFound = errors.New("treatment.repository: treatment not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("treatment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("treatment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("treatment.repository: failed to scan row")
)
