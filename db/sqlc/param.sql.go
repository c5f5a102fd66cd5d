package db

import (
	"context"
)

const insertParam = `-- name: InsertParam :one
INSERT INTO modelparameters (
    "Date", "Ticker", "Model", "V0", "Kappa", "Theta", "Nu", "Rho", "Lambda", "Muj", "Deltaj", "Rmse", "Status", "Iterations"
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
)
RETURNING "Date", "Ticker", "Model", "V0", "Kappa", "Theta", "Nu", "Rho", "Lambda", "Muj", "Deltaj", "Rmse", "Status", "Iterations"
`

type InsertParamParams struct {
	Date       string
	Ticker     string
	Model      string
	V0         float64
	Kappa      float64
	Theta      float64
	Nu         float64
	Rho        float64
	Lambda     float64
	Muj        float64
	Deltaj     float64
	Rmse       float64
	Status     string
	Iterations int32
}

func (q *Queries) InsertParam(ctx context.Context, arg InsertParamParams) (Modelparameter, error) {
	row := q.db.QueryRowContext(ctx, insertParam,
		arg.Date,
		arg.Ticker,
		arg.Model,
		arg.V0,
		arg.Kappa,
		arg.Theta,
		arg.Nu,
		arg.Rho,
		arg.Lambda,
		arg.Muj,
		arg.Deltaj,
		arg.Rmse,
		arg.Status,
		arg.Iterations,
	)
	var i Modelparameter
	err := row.Scan(
		&i.Date,
		&i.Ticker,
		&i.Model,
		&i.V0,
		&i.Kappa,
		&i.Theta,
		&i.Nu,
		&i.Rho,
		&i.Lambda,
		&i.Muj,
		&i.Deltaj,
		&i.Rmse,
		&i.Status,
		&i.Iterations,
	)
	return i, err
}

const getParam = `-- name: GetParam :many
SELECT "Date", "Ticker", "Model", "V0", "Kappa", "Theta", "Nu", "Rho", "Lambda", "Muj", "Deltaj", "Rmse", "Status", "Iterations"
FROM modelparameters
WHERE "Date" = $1
`

func (q *Queries) GetParam(ctx context.Context, date string) ([]Modelparameter, error) {
	rows, err := q.db.QueryContext(ctx, getParam, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Modelparameter
	for rows.Next() {
		var i Modelparameter
		if err := rows.Scan(
			&i.Date,
			&i.Ticker,
			&i.Model,
			&i.V0,
			&i.Kappa,
			&i.Theta,
			&i.Nu,
			&i.Rho,
			&i.Lambda,
			&i.Muj,
			&i.Deltaj,
			&i.Rmse,
			&i.Status,
			&i.Iterations,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getTickerParam = `-- name: GetTickerParam :one
SELECT "Date", "Ticker", "Model", "V0", "Kappa", "Theta", "Nu", "Rho", "Lambda", "Muj", "Deltaj", "Rmse", "Status", "Iterations"
FROM modelparameters
WHERE "Ticker" = $1 AND "Date" = $2 AND "Model" = $3
LIMIT 1
`

type GetTickerParamParams struct {
	Ticker string
	Date   string
	Model  string
}

func (q *Queries) GetTickerParam(ctx context.Context, arg GetTickerParamParams) (Modelparameter, error) {
	row := q.db.QueryRowContext(ctx, getTickerParam, arg.Ticker, arg.Date, arg.Model)
	var i Modelparameter
	err := row.Scan(
		&i.Date,
		&i.Ticker,
		&i.Model,
		&i.V0,
		&i.Kappa,
		&i.Theta,
		&i.Nu,
		&i.Rho,
		&i.Lambda,
		&i.Muj,
		&i.Deltaj,
		&i.Rmse,
		&i.Status,
		&i.Iterations,
	)
	return i, err
}

const getLatestParamDate = `-- name: GetLatestParamDate :one
SELECT DISTINCT "Date" FROM modelparameters ORDER BY "Date" DESC LIMIT 1
`

func (q *Queries) GetLatestParamDate(ctx context.Context) (string, error) {
	row := q.db.QueryRowContext(ctx, getLatestParamDate)
	var date string
	err := row.Scan(&date)
	return date, err
}

const getAllParam = `-- name: GetAllParam :many
SELECT "Date", "Ticker", "Model", "V0", "Kappa", "Theta", "Nu", "Rho", "Lambda", "Muj", "Deltaj", "Rmse", "Status", "Iterations"
FROM modelparameters
ORDER BY "Date" DESC, "Ticker"
`

func (q *Queries) GetAllParam(ctx context.Context) ([]Modelparameter, error) {
	rows, err := q.db.QueryContext(ctx, getAllParam)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Modelparameter
	for rows.Next() {
		var i Modelparameter
		if err := rows.Scan(
			&i.Date,
			&i.Ticker,
			&i.Model,
			&i.V0,
			&i.Kappa,
			&i.Theta,
			&i.Nu,
			&i.Rho,
			&i.Lambda,
			&i.Muj,
			&i.Deltaj,
			&i.Rmse,
			&i.Status,
			&i.Iterations,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
