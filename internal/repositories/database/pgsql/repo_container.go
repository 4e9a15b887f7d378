package pgsql

import (
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRecordRepository returns the writer for the household record store.
func NewRecordRepository(dbPool *pgxpool.Pool) portsrepo.RemoteRecordRepositoryWithTx {
	return newPgxRecordRepository(dbPool)
}
