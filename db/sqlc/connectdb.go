package db

import (
	"context"
)

type GetLatestValuesResult struct {
	Date   string
	Params []Modelparameter
}

// GetLatestValues reads the most recent calibration date and every
// parameter row on it inside one transaction, so a concurrent writer cannot
// split the snapshot.
func (store *SQLStore) GetLatestValues(ctx context.Context) (GetLatestValuesResult, error) {
	var result GetLatestValuesResult
	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		result.Date, err = q.GetLatestParamDate(ctx)
		if err != nil {
			return err
		}
		result.Params, err = q.GetParam(ctx, result.Date)
		if err != nil {
			return err
		}

		return err
	})
	return result, err
}

// SaveCalibrations inserts one parameter row per ticker atomically. A batch
// is all-or-nothing so a pricing read never sees a half-written date.
func (store *SQLStore) SaveCalibrations(ctx context.Context, args []InsertParamParams) ([]Modelparameter, error) {
	var result []Modelparameter
	err := store.execTx(ctx, func(q *Queries) error {
		for _, arg := range args {
			row, err := q.InsertParam(ctx, arg)
			if err != nil {
				return err
			}
			result = append(result, row)
		}
		return nil
	})
	return result, err
}
