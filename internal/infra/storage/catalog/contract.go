package catalog

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов.
// Реализуется *sql.DB и *sql.Tx.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}
