package datastore

type FetchParams struct {
	Limit int
}
