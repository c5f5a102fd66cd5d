package db

import (
	"context"
)

const createUser = `-- name: CreateUser :one
INSERT INTO users (
    "Prefix", "Token", "ExpiredAt", "CreatedAt"
) VALUES (
    $1, $2, $3, $4
)
RETURNING "Prefix", "Token", "ExpiredAt", "CreatedAt"
`

type CreateUserParams struct {
	Prefix    string
	Token     string
	ExpiredAt string
	CreatedAt string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, createUser,
		arg.Prefix,
		arg.Token,
		arg.ExpiredAt,
		arg.CreatedAt,
	)
	var i User
	err := row.Scan(&i.Prefix, &i.Token, &i.ExpiredAt, &i.CreatedAt)
	return i, err
}

const getUser = `-- name: GetUser :one
SELECT "Prefix", "Token", "ExpiredAt", "CreatedAt" FROM users
WHERE "Prefix" = $1 LIMIT 1
`

func (q *Queries) GetUser(ctx context.Context, prefix string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUser, prefix)
	var i User
	err := row.Scan(&i.Prefix, &i.Token, &i.ExpiredAt, &i.CreatedAt)
	return i, err
}
