package mock

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/infra/db"
)

var dbSeq atomic.Int64

// NewDb opens a private in-memory sqlite database with the full schema.
// Each call gets its own database so scenarios never share rows.
func NewDb(ctx context.Context) (*db.Database, error) {
	name := fmt.Sprintf("file:bdd_%d?mode=memory&cache=shared", dbSeq.Add(1))

	database, err := db.Open(ctx, &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    name,
	})
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(); err != nil {
		_ = database.Close()
		return nil, err
	}

	return database, nil
}
