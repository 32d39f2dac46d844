package sheetdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

var ErrNothingUpdated = errors.New("no rows were updated")

// Client speaks the SheetDB dialect: every sheet of the backing spreadsheet
// is a collection addressed with a ?sheet= query parameter, rows are flat
// JSON objects, and writes are wrapped in a {"data": ...} envelope.
type Client struct {
	origin     string
	logger     *zap.Logger
	httpClient *http.Client
}

func NewClient(origin string, logger *zap.Logger) *Client {
	return &Client{
		origin:     origin,
		logger:     logger,
		httpClient: &http.Client{},
	}
}

// List fetches every row of a sheet. Error statuses and non-array bodies
// normalize to an empty slice so callers always see a well-formed list.
func (c *Client) List(ctx context.Context, sheet string) ([]Record, error) {
	// cache-busting timestamp, same trick the hosted API expects
	reqURL := fmt.Sprintf("%s?sheet=%s&t=%d", c.origin, url.QueryEscape(sheet), time.Now().UnixMilli())

	body, status, err := c.do(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		c.logger.Sugar().Warnf("sheetdb list(%s) returned status %d", sheet, status)
		return []Record{}, nil
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		c.logger.Sugar().Warnf("sheetdb list(%s) returned a non-array body", sheet)
		return []Record{}, nil
	}

	return records, nil
}

func (c *Client) Create(ctx context.Context, sheet string, record Record) error {
	reqURL := fmt.Sprintf("%s?sheet=%s", c.origin, url.QueryEscape(sheet))

	payload, err := json.Marshal(map[string]interface{}{"data": record})
	if err != nil {
		return err
	}

	_, status, err := c.do(ctx, http.MethodPost, reqURL, payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("sheetdb create(%s) returned status %d", sheet, status)
	}

	return nil
}

// Update patches specific columns of one row by id. SheetDB reports how many
// rows matched; zero means the id does not exist anymore.
func (c *Client) Update(ctx context.Context, sheet string, id string, fields Record) error {
	reqURL := fmt.Sprintf("%s/id/%s?sheet=%s", c.origin, url.PathEscape(id), url.QueryEscape(sheet))

	payload, err := json.Marshal(map[string]interface{}{"data": fields})
	if err != nil {
		return err
	}

	body, status, err := c.do(ctx, http.MethodPatch, reqURL, payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("sheetdb update(%s/%s) returned status %d", sheet, id, status)
	}

	var result struct {
		Updated int `json:"updated"`
	}
	if err := json.Unmarshal(body, &result); err == nil && result.Updated == 0 {
		return ErrNothingUpdated
	}

	return nil
}

func (c *Client) Delete(ctx context.Context, sheet string, id string) error {
	reqURL := fmt.Sprintf("%s/id/%s?sheet=%s", c.origin, url.PathEscape(id), url.QueryEscape(sheet))

	_, status, err := c.do(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("sheetdb delete(%s/%s) returned status %d", sheet, id, status)
	}

	return nil
}

// Search filters rows by exact column values, used for username lookups.
func (c *Client) Search(ctx context.Context, sheet string, filters map[string]string) ([]Record, error) {
	values := url.Values{}
	for field, value := range filters {
		values.Set(field, value)
	}
	values.Set("sheet", sheet)
	reqURL := fmt.Sprintf("%s/search?%s", c.origin, values.Encode())

	body, status, err := c.do(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return []Record{}, nil
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return []Record{}, nil
	}

	return records, nil
}

func (c *Client) do(ctx context.Context, method string, reqURL string, payload []byte) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, 0, err
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}
