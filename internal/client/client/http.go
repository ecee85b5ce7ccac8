package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/contacto/internal/client/models"
	"github.com/dmitrijs2005/contacto/internal/netx"
	"github.com/google/uuid"
)

const (
	contactsPath    = "/contacto"
	requestIDHeader = "X-Request-Id"
)

type HTTPClient struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

// NewHTTPClient returns a client for the API rooted at baseURL. A zero
// timeout leaves requests bounded only by the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api url %q must be http or https", baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		timeout: timeout,
		http:    &http.Client{},
	}, nil
}

// updateRequest is the PUT body; the date travels as an ISO-8601 string.
type updateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

func (c *HTTPClient) List(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := c.do(ctx, "list", http.MethodGet, contactsPath, nil, &contacts); err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts, nil
}

func (c *HTTPClient) Create(ctx context.Context, draft models.ContactDraft) error {
	return c.do(ctx, "create", http.MethodPost, contactsPath, draft, nil)
}

func (c *HTTPClient) Update(ctx context.Context, id int64, name, email, message string, date time.Time) (*models.Contact, error) {
	req := updateRequest{
		Name:    name,
		Email:   email,
		Message: message,
		Date:    date.UTC().Format(time.RFC3339Nano),
	}

	var updated models.Contact
	if err := c.do(ctx, "update", http.MethodPut, contactPath(id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, "delete", http.MethodDelete, contactPath(id), nil, nil)
}

func contactPath(id int64) string {
	return contactsPath + "/" + strconv.FormatInt(id, 10)
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	h := http.Header{}
	h.Set(requestIDHeader, uuid.NewString())

	err := netx.DoJSON(ctx, c.http, method, c.baseURL+path, h, in, out)
	return c.mapError(op, err)
}

// mapError converts transport failures into *TransportError values carrying
// a sentinel that callers can match.
func (c *HTTPClient) mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, netx.ErrDecode) {
		return &TransportError{Op: op, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
	}

	var se *netx.StatusError
	if !errors.As(err, &se) {
		return &TransportError{Op: op, Err: fmt.Errorf("%w: %w", ErrUnavailable, err)}
	}

	te := &TransportError{Op: op, StatusCode: se.StatusCode, Message: errorMessage(se.Body)}
	switch {
	case se.StatusCode == http.StatusNotFound:
		te.Err = ErrNotFound
	case se.StatusCode == http.StatusBadRequest, se.StatusCode == http.StatusUnprocessableEntity:
		te.Err = ErrRejected
	case se.StatusCode >= 500:
		te.Err = ErrUnavailable
	default:
		te.Err = fmt.Errorf("unexpected status %d", se.StatusCode)
	}
	return te
}

// errorMessage extracts {"error": "..."} from an error body, falling back to
// the raw text.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}
