package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"summit-sheriff/recruiting/internal/models/entities"
)

type KeysRepo struct {
	db *sqlx.DB
}

func NewApiKeysRepo(db *sqlx.DB) *KeysRepo {
	return &KeysRepo{db}
}

func (r *KeysRepo) GetStatus(ctx context.Context, key string) (*entities.ApiKey, error) {
	var apiKey entities.ApiKey

	err := r.db.QueryRowxContext(ctx,
		`SELECT id, status, created_at FROM api_keys WHERE id = $1`, key,
	).StructScan(&apiKey)
	if err != nil {
		return nil, err
	}

	return &apiKey, nil
}
