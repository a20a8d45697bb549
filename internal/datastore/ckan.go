package datastore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/moov-io/base/telemetry"

	"github.com/go-resty/resty/v2"
	"github.com/valyala/fastjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Field names used by the Business Names Register resource.
const (
	fieldName   = "BN_NAME"
	fieldState  = "BN_STATE_OF_REG"
	fieldStatus = "BN_STATUS"
	fieldRegDT  = "BN_REG_DT"
)

type ckanRepository struct {
	config CKANConfig
	client *resty.Client
}

var _ Repository = (&ckanRepository{})

func newCKANRepository(config CKANConfig) *ckanRepository {
	client := resty.New().SetTimeout(config.Timeout)

	return &ckanRepository{
		config: config,
		client: client,
	}
}

// ListBusinessNames issues one bounded datastore_search call. There is no
// retry and no pagination, a failed call surfaces immediately.
func (r *ckanRepository) ListBusinessNames(ctx context.Context, params FetchParams) ([]BusinessRecord, error) {
	ctx, span := telemetry.StartSpan(ctx, "datastore-list-business-names", trace.WithAttributes(
		attribute.String("ckan.resource_id", r.config.ResourceID),
		attribute.Int("ckan.limit", params.Limit),
	))
	defer span.End()

	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"resource_id": r.config.ResourceID,
			"limit":       strconv.Itoa(params.Limit),
		}).
		Get(r.config.BaseURL)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("requesting %s failed: %w", r.config.BaseURL, err)}
	}
	if resp.IsError() {
		return nil, &NetworkError{Err: fmt.Errorf("unexpected status %s from %s", resp.Status(), r.config.BaseURL)}
	}

	records, err := readDatastoreResponse(resp.Body())
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("ckan.record_count", len(records)))

	return records, nil
}

func readDatastoreResponse(body []byte) ([]BusinessRecord, error) {
	var p fastjson.Parser

	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, &DataFormatError{Err: fmt.Errorf("parsing datastore response failed: %w", err)}
	}

	if !v.GetBool("success") {
		return nil, &NetworkError{Err: errors.New("datastore_search call was not successful")}
	}

	recs := v.Get("result", "records")
	if recs == nil {
		return nil, &DataFormatError{Err: errors.New("response has no result.records")}
	}
	items, err := recs.Array()
	if err != nil {
		return nil, &DataFormatError{Err: fmt.Errorf("result.records is not an array: %w", err)}
	}

	out := make([]BusinessRecord, 0, len(items))
	for _, item := range items {
		out = append(out, BusinessRecord{
			Name:       string(item.GetStringBytes(fieldName)),
			State:      string(item.GetStringBytes(fieldState)),
			Status:     string(item.GetStringBytes(fieldStatus)),
			Registered: parseRegistrationDate(string(item.GetStringBytes(fieldRegDT))),
		})
	}
	return out, nil
}

// parseRegistrationDate reads the register's DD/MM/YYYY dates. Some
// resources expose ISO dates instead, so accept those as well. Anything
// else is treated as no date.
func parseRegistrationDate(value string) time.Time {
	for _, layout := range []string{"02/01/2006", "2006-01-02"} {
		if when, err := time.Parse(layout, value); err == nil {
			return when
		}
	}
	return time.Time{}
}
