package datastore_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ozdata/bizname-search/internal/datastore"

	"github.com/stretchr/testify/require"
)

func TestRepository_ListBusinessNames(t *testing.T) {
	var gotResourceID, gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotResourceID = r.URL.Query().Get("resource_id")
		gotLimit = r.URL.Query().Get("limit")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"result": {
				"records": [
					{"BN_NAME": "ACME PLUMBING", "BN_STATE_OF_REG": "VIC", "BN_STATUS": "Registered", "BN_REG_DT": "07/04/2016"},
					{"BN_NAME": "OUTBACK CAFE", "BN_STATE_OF_REG": "NSW", "BN_STATUS": "Deregistered", "BN_REG_DT": "2019-11-02"},
					{"BN_NAME": "NO DATE PTY LTD", "BN_STATE_OF_REG": "QLD", "BN_STATUS": "Registered", "BN_REG_DT": ""}
				]
			}
		}`))
	}))
	t.Cleanup(server.Close)

	repo := testRepository(t, server.URL)

	records, err := repo.ListBusinessNames(context.Background(), datastore.FetchParams{Limit: 25})
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.Equal(t, "res-123", gotResourceID)
	require.Equal(t, "25", gotLimit)

	require.Equal(t, "ACME PLUMBING", records[0].Name)
	require.Equal(t, "VIC", records[0].State)
	require.Equal(t, "Registered", records[0].Status)
	require.Equal(t, time.Date(2016, time.April, 7, 0, 0, 0, 0, time.UTC), records[0].Registered)

	require.Equal(t, time.Date(2019, time.November, 2, 0, 0, 0, 0, time.UTC), records[1].Registered)

	require.False(t, records[2].HasRegistrationDate())
}

func TestRepository_NetworkErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "unsuccessful envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success": false, "error": {"message": "resource not found"}}`))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			t.Cleanup(server.Close)

			repo := testRepository(t, server.URL)

			records, err := repo.ListBusinessNames(context.Background(), datastore.FetchParams{Limit: 10})
			require.Nil(t, records)

			var netErr *datastore.NetworkError
			require.ErrorAs(t, err, &netErr)
		})
	}
}

func TestRepository_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(250 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	repo, err := datastore.NewRepository(datastore.Config{
		CKAN: &datastore.CKANConfig{
			BaseURL:    server.URL,
			ResourceID: "res-123",
			Timeout:    25 * time.Millisecond,
		},
	})
	require.NoError(t, err)

	records, err := repo.ListBusinessNames(context.Background(), datastore.FetchParams{Limit: 10})
	require.Nil(t, records)

	var netErr *datastore.NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestRepository_DataFormatErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "not json",
			body: `<html>gateway error</html>`,
		},
		{
			name: "missing records",
			body: `{"success": true, "result": {}}`,
		},
		{
			name: "records not an array",
			body: `{"success": true, "result": {"records": "nope"}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			t.Cleanup(server.Close)

			repo := testRepository(t, server.URL)

			records, err := repo.ListBusinessNames(context.Background(), datastore.FetchParams{Limit: 10})
			require.Nil(t, records)

			var formatErr *datastore.DataFormatError
			require.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestNewRepository_Unconfigured(t *testing.T) {
	repo, err := datastore.NewRepository(datastore.Config{})
	require.Nil(t, repo)
	require.ErrorContains(t, err, "no datastore configured")
}

func testRepository(t *testing.T, baseURL string) datastore.Repository {
	t.Helper()

	repo, err := datastore.NewRepository(datastore.Config{
		CKAN: &datastore.CKANConfig{
			BaseURL:    baseURL,
			ResourceID: "res-123",
			Timeout:    5 * time.Second,
		},
	})
	require.NoError(t, err)

	return repo
}
