package booking

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// UnitOfWork батч отложенных мутаций, применяемый атомарно через Save
// Сервисный слой зависит от этого интерфейса, а не от конкретного Unit
type UnitOfWork interface {
	Add(b *domain.Booking)
	Update(b *domain.Booking)
	Delete(b *domain.Booking)
	Len() int
	Save(ctx context.Context) error
}
