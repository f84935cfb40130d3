package fintrack

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore persists the ledger in a SQLite database. Save keeps the
// whole-rewrite semantics of the flat file: the transactions table is
// replaced in a single SQL transaction.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	currency string
}

// NewSQLiteStore opens (creating if necessary) the database at path and
// brings its schema up to date.
func NewSQLiteStore(path, currency string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(path); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteStore{db: db, path: path, currency: currency}, nil
}

// runMigrations applies the embedded schema migrations on a separate
// connection to avoid interfering with the store's own.
func runMigrations(path string) error {
	migrateDB, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}
	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Name() string { return s.path }

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the complete sequence ordered by id. Timestamps and amounts are
// stored as text so they round-trip exactly.
func (s *SQLiteStore) Load() ([]Transaction, error) {
	rows, err := s.db.Query(`SELECT id, date, description, amount, kind FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []Transaction
	for rows.Next() {
		var (
			id                 int
			date, desc, amount string
			kind               string
		)
		if err := rows.Scan(&id, &date, &desc, &amount, &kind); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		ts, err := ParseTimestamp(date)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", id, err)
		}
		v, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %d has invalid amount %q: %w", id, amount, err)
		}
		txs = append(txs, Transaction{
			ID:          id,
			Date:        ts,
			Description: desc,
			Amount:      M(v, s.currency),
			Kind:        Kind(kind),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read transactions: %w", err)
	}
	return txs, nil
}

// Save replaces the whole transactions table in one SQL transaction.
func (s *SQLiteStore) Save(txs []Transaction) error {
	dbTx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.Exec(`DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	stmt, err := dbTx.Prepare(`INSERT INTO transactions (id, date, description, amount, kind) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, tx := range txs {
		if _, err := stmt.Exec(tx.ID, tx.Date.String(), tx.Description, tx.Amount.Decimal().String(), string(tx.Kind)); err != nil {
			return fmt.Errorf("insert transaction %d: %w", tx.ID, err)
		}
	}
	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit transactions: %w", err)
	}
	return nil
}
