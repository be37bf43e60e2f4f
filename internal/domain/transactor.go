package domain

import "context"

// Transactor runs fn inside a single storage transaction. Repository calls made
// with the context passed to fn take part in that transaction. Nested calls
// reuse the outer transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
