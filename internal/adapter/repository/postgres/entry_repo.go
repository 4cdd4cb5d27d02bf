package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository. Entries are append-only;
// there is no update or delete path.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

const entryColumns = `id, wallet_id, type, direction, from_currency, to_currency, amount, created_at`

// Create inserts an entry within the given transaction, so it commits or
// rolls back together with the balance update.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	query := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := tx.(*Tx).PgxTx().Exec(ctx, query,
		entry.ID,
		entry.WalletID,
		string(entry.Type),
		string(entry.Direction),
		string(entry.FromCurrency),
		string(entry.ToCurrency),
		decimalToNumeric(entry.Amount),
		timeToPgTimestamptz(entry.CreatedAt),
	)

	return err
}

// ListByWallet retrieves a wallet's entries in chronological order.
func (r *EntryRepository) ListByWallet(ctx context.Context, walletID string) ([]*domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE wallet_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var (
		entry        domain.Entry
		entryType    string
		direction    string
		fromCurrency string
		toCurrency   string
		amount       pgtype.Numeric
		createdAt    pgtype.Timestamptz
	)

	err := row.Scan(
		&entry.ID,
		&entry.WalletID,
		&entryType,
		&direction,
		&fromCurrency,
		&toCurrency,
		&amount,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Type = domain.EntryType(entryType)
	entry.Direction = domain.EntryDirection(direction)
	entry.FromCurrency = domain.CurrencyCode(fromCurrency)
	entry.ToCurrency = domain.CurrencyCode(toCurrency)
	entry.Amount = numericToDecimal(amount)
	entry.CreatedAt = createdAt.Time

	return &entry, nil
}
