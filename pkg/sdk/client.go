// Package sdk is the client library for the crmforge API. It is what the
// CLI uses, and the supported way for other Go programs to talk to a
// running daemon.
package sdk

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/crmforge-dev/crmforge/pkg/schema"
	"github.com/go-resty/resty/v2"
)

var (
	// ErrNotFound is returned when the server reports no record for an id.
	ErrNotFound = errors.New("customer not found")
	// ErrBadRequest is returned when the server rejects the request shape.
	ErrBadRequest = errors.New("bad request")
)

// Client talks to one daemon. Safe for concurrent use.
type Client struct {
	http *resty.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:7002".
// Transient failures are retried with backoff. HTTPS endpoints are assumed
// to carry the daemon's self-signed certificate, so verification is skipped.
func New(baseURL string) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)

	if strings.HasPrefix(baseURL, "https://") {
		rc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &Client{http: rc}
}

// apiError is the error payload shape every endpoint uses.
type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (e apiError) message() string {
	if e.Details != "" {
		return e.Error + ": " + e.Details
	}
	return e.Error
}

// ListQuery mirrors the list endpoint's filter, sort, and page parameters.
// Zero values are omitted from the request.
type ListQuery struct {
	Search     string
	Status     string
	Company    string
	DateStart  string // RFC3339 or YYYY-MM-DD
	DateEnd    string
	RevenueMin string
	RevenueMax string
	Tags       []string
	SortField  string
	SortOrder  string
	Page       int
	Limit      int
}

func (q ListQuery) params() map[string]string {
	p := map[string]string{}
	set := func(k, v string) {
		if v != "" {
			p[k] = v
		}
	}
	set("q", q.Search)
	set("status", q.Status)
	set("company", q.Company)
	set("date_start", q.DateStart)
	set("date_end", q.DateEnd)
	set("revenue_min", q.RevenueMin)
	set("revenue_max", q.RevenueMax)
	set("tags", strings.Join(q.Tags, ","))
	set("_sort", q.SortField)
	set("_order", q.SortOrder)
	if q.Page > 0 {
		p["_page"] = strconv.Itoa(q.Page)
	}
	if q.Limit > 0 {
		p["_limit"] = strconv.Itoa(q.Limit)
	}
	return p
}

// List fetches one page of customers and the total match count.
func (c *Client) List(q ListQuery) ([]schema.Customer, int, error) {
	var customers []schema.Customer
	resp, err := c.http.R().
		SetQueryParams(q.params()).
		SetResult(&customers).
		Get("/api/customers")
	if err != nil {
		return nil, 0, err
	}
	if resp.IsError() {
		return nil, 0, c.asError(resp)
	}

	total, err := strconv.Atoi(resp.Header().Get("X-Total-Count"))
	if err != nil {
		return nil, 0, fmt.Errorf("missing total count header: %w", err)
	}
	return customers, total, nil
}

func (c *Client) Get(id int) (schema.Customer, error) {
	var customer schema.Customer
	resp, err := c.http.R().
		SetResult(&customer).
		Get(fmt.Sprintf("/api/customers/%d", id))
	if err != nil {
		return schema.Customer{}, err
	}
	if resp.IsError() {
		return schema.Customer{}, c.asError(resp)
	}
	return customer, nil
}

func (c *Client) Create(in schema.CustomerInput) (schema.Customer, error) {
	var customer schema.Customer
	resp, err := c.http.R().
		SetBody(in).
		SetResult(&customer).
		Post("/api/customers")
	if err != nil {
		return schema.Customer{}, err
	}
	if resp.IsError() {
		return schema.Customer{}, c.asError(resp)
	}
	return customer, nil
}

func (c *Client) Update(id int, in schema.CustomerInput) (schema.Customer, error) {
	var customer schema.Customer
	resp, err := c.http.R().
		SetBody(in).
		SetResult(&customer).
		Put(fmt.Sprintf("/api/customers/%d", id))
	if err != nil {
		return schema.Customer{}, err
	}
	if resp.IsError() {
		return schema.Customer{}, c.asError(resp)
	}
	return customer, nil
}

func (c *Client) Delete(id int) error {
	resp, err := c.http.R().Delete(fmt.Sprintf("/api/customers/%d", id))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return c.asError(resp)
	}
	return nil
}

// ExportCSV downloads the CSV export of every record matching the query.
func (c *Client) ExportCSV(q ListQuery) ([]byte, error) {
	resp, err := c.http.R().
		SetQueryParams(q.params()).
		Get("/api/customers/export")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, c.asError(resp)
	}
	return resp.Body(), nil
}

// Tags fetches the distinct tag labels in the store.
func (c *Client) Tags() ([]string, error) {
	var tags []string
	resp, err := c.http.R().
		SetResult(&tags).
		Get("/api/tags")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, c.asError(resp)
	}
	return tags, nil
}

func (c *Client) Ping() error {
	resp, err := c.http.R().Get("/api/ping")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return c.asError(resp)
	}
	return nil
}

// asError maps a non-2xx response to a sentinel where the status has a
// defined meaning, carrying the server's message alongside.
func (c *Client) asError(resp *resty.Response) error {
	var payload apiError
	msg := resp.Status()
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Error != "" {
		msg = payload.message()
	}

	switch resp.StatusCode() {
	case 404:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case 400:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	default:
		return fmt.Errorf("server error: %s", msg)
	}
}
