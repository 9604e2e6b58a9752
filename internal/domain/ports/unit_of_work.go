package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// Operações de negócio com múltiplas escritas (pedido + linhas + estoque)
// rodam dentro de WithTransaction com rollback em falha parcial.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
