package dbmetrics

import "context"

type ctxKey struct{}

var txKey = ctxKey{}

// WithExecutor кладет транзакционный исполнитель в контекст
// Используется transaction manager'ами, репозитории забирают его через GetExecutor
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor возвращает исполнитель из контекста, если там есть активная
// транзакция, иначе переданный fallback (обычно это db репозитория)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли контекст внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(TxExecutor)
	return ok
}
