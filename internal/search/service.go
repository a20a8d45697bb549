package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/moov-io/base/log"
	"github.com/moov-io/base/telemetry"
	"github.com/ozdata/bizname-search/internal/datastore"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Service interface {
	Search(ctx context.Context, params FilterParams) ([]datastore.BusinessRecord, error)
}

func NewService(logger log.Logger, config Config, repository datastore.Repository) (Service, error) {
	if repository == nil {
		return nil, errors.New("nil datastore repository")
	}

	if config.NameMatchThreshold == 0 {
		config.NameMatchThreshold = DefaultNameMatchThreshold
	}
	if config.NameMatchThreshold < 0 || config.NameMatchThreshold > 1 {
		return nil, fmt.Errorf("name match threshold %.2f is outside 0..1", config.NameMatchThreshold)
	}

	return &service{
		logger:     logger,
		config:     config,
		repository: repository,
	}, nil
}

type service struct {
	logger log.Logger
	config Config

	repository datastore.Repository
}

// Search fetches one bounded batch of records and narrows it with the
// active filters. Filters never trigger another fetch.
func (s *service) Search(ctx context.Context, params FilterParams) ([]datastore.BusinessRecord, error) {
	if params.Limit <= 0 {
		return nil, fmt.Errorf("limit must be a positive integer, got %d", params.Limit)
	}

	ctx, span := telemetry.StartSpan(ctx, "search-business-names", trace.WithAttributes(
		attribute.Int("search.limit", params.Limit),
		attribute.String("search.state", params.State),
		attribute.String("search.status", params.Status),
	))
	defer span.End()

	records, err := s.repository.ListBusinessNames(ctx, datastore.FetchParams{Limit: params.Limit})
	if err != nil {
		return nil, fmt.Errorf("listing business names failed: %w", err)
	}
	span.SetAttributes(attribute.Int("search.fetched_count", len(records)))

	records = applyFilters(records, params)
	records = rankByName(records, params.Name, s.config.NameMatchThreshold)

	span.SetAttributes(attribute.Int("search.result_count", len(records)))

	return records, nil
}
