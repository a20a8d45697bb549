package datastore

import (
	"context"
	"errors"
)

type Repository interface {
	ListBusinessNames(ctx context.Context, params FetchParams) ([]BusinessRecord, error)
}

func NewRepository(config Config) (Repository, error) {
	if config.CKAN != nil {
		return newCKANRepository(*config.CKAN), nil
	}

	return nil, errors.New("no datastore configured")
}
