package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// PostgrestStore implements Store against the hosted database's REST
// table API using the service role key.
type PostgrestStore struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

// NewPostgrestStore creates a store for the given project URL and
// service role key
func NewPostgrestStore(baseURL, serviceKey string) *PostgrestStore {
	return &PostgrestStore{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *PostgrestStore) tableURL(table string, filters []Filter, orderBy string, desc bool, limit int) string {
	params := url.Values{}
	for _, f := range filters {
		params.Add(f.Column, f.Op+"."+filterValue(f))
	}
	if orderBy != "" {
		dir := "asc"
		if desc {
			dir = "desc"
		}
		params.Set("order", orderBy+"."+dir)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	u := s.baseURL + "/rest/v1/" + table
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

func filterValue(f Filter) string {
	switch v := f.Value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (s *PostgrestStore) do(method, url string, body any, single bool) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", "application/json")
	if single {
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("record store request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read record store response: %v", err)
	}
	return respBody, resp.StatusCode, nil
}

func (s *PostgrestStore) FetchRows(q Query) ([]Row, error) {
	body, status, err := s.do(http.MethodGet, s.tableURL(q.Table, q.Filters, q.OrderBy, q.Desc, q.Limit), nil, false)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("record store returned status %d for %s: %s", status, q.Table, string(body))
	}

	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse rows from %s: %v", q.Table, err)
	}
	return rows, nil
}

func (s *PostgrestStore) FetchSingle(q Query) (Row, error) {
	body, status, err := s.do(http.MethodGet, s.tableURL(q.Table, q.Filters, q.OrderBy, q.Desc, q.Limit), nil, true)
	if err != nil {
		return nil, err
	}
	// PostgREST answers 406 when the object representation matches zero
	// (or more than one) rows
	if status == http.StatusNotAcceptable || status == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("record store returned status %d for %s: %s", status, q.Table, string(body))
	}

	var row Row
	if err := json.Unmarshal(body, &row); err != nil {
		return nil, fmt.Errorf("failed to parse row from %s: %v", q.Table, err)
	}
	if len(row) == 0 {
		return nil, ErrNotFound
	}
	return row, nil
}

func (s *PostgrestStore) InsertRow(table string, row Row) error {
	body, status, err := s.do(http.MethodPost, s.tableURL(table, nil, "", false, 0), row, false)
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return fmt.Errorf("failed to insert into %s (status %d): %s", table, status, string(body))
	}
	return nil
}

func (s *PostgrestStore) UpdateRow(table string, filters []Filter, row Row) error {
	body, status, err := s.do(http.MethodPatch, s.tableURL(table, filters, "", false, 0), row, false)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return fmt.Errorf("failed to update %s (status %d): %s", table, status, string(body))
	}
	return nil
}

func (s *PostgrestStore) DeleteRow(table string, filters []Filter) error {
	body, status, err := s.do(http.MethodDelete, s.tableURL(table, filters, "", false, 0), nil, false)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return fmt.Errorf("failed to delete from %s (status %d): %s", table, status, string(body))
	}
	return nil
}
