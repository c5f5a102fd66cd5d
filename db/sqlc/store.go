package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

type Querier interface {
	InsertParam(ctx context.Context, arg InsertParamParams) (Modelparameter, error)
	GetParam(ctx context.Context, date string) ([]Modelparameter, error)
	GetTickerParam(ctx context.Context, arg GetTickerParamParams) (Modelparameter, error)
	GetLatestParamDate(ctx context.Context) (string, error)
	GetAllParam(ctx context.Context) ([]Modelparameter, error)
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUser(ctx context.Context, prefix string) (User, error)
}

// Store provides all functions to execute db queries and transactions
type Store interface {
	Querier
	GetLatestValues(ctx context.Context) (GetLatestValuesResult, error)
	SaveCalibrations(ctx context.Context, args []InsertParamParams) ([]Modelparameter, error)
}

// SQLStore provides all functions to execute SQL queries and transactions
type SQLStore struct {
	db *sql.DB
	*Queries
}

func NewStore(db *sql.DB) Store {
	return &SQLStore{
		db:      db,
		Queries: New(db),
	}
}

func ConnectDB(driver, source string) (*sql.DB, error) {
	conn, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		return nil, err
	}
	return conn, nil
}

// execTx executes a function within a database transaction
func (store *SQLStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
