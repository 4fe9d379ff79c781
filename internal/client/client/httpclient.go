package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/medreminder/internal/client/models"
	"github.com/dmitrijs2005/medreminder/internal/common"
	"github.com/google/uuid"
)

const maxBodySize = 1 << 20

const (
	pathLogin    = "/api/auth/login"
	pathRegister = "/api/auth/register"
	pathMedicine = "/api/medicine"
)

// HTTPClient talks to the backend's JSON API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
}

// NewHTTPClient validates baseURL and builds a client. A zero timeout leaves
// the transport default in place.
func NewHTTPClient(baseURL string, timeout time.Duration, creds CredentialSource) (*HTTPClient, error) {
	return NewHTTPClientWithTransport(baseURL, timeout, creds, nil)
}

// NewHTTPClientWithTransport is NewHTTPClient with an injectable transport.
func NewHTTPClientWithTransport(baseURL string, timeout time.Duration, creds CredentialSource, tr http.RoundTripper) (*HTTPClient, error) {
	baseURL = strings.TrimSpace(baseURL)
	u, err := url.ParseRequestURI(baseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q", baseURL)
	}
	if tr == nil {
		tr = http.DefaultTransport
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &requestIDTransport{base: tr},
		},
		creds: creds,
	}, nil
}

// requestIDTransport stamps every outgoing request with a correlation ID.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(common.RequestIDHeaderName) == "" {
		req = req.Clone(req.Context())
		req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}
	return t.base.RoundTrip(req)
}

func (c *HTTPClient) Register(ctx context.Context, r models.Registration) error {
	return c.do(ctx, http.MethodPost, pathRegister, "", r, nil, http.StatusOK, http.StatusCreated)
}

func (c *HTTPClient) Login(ctx context.Context, cr models.Credentials) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, pathLogin, "", cr, &out, http.StatusOK); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.New("login response has no token")
	}
	return out.Token, nil
}

func (c *HTTPClient) List(ctx context.Context) ([]models.Reminder, error) {
	token, err := c.credential()
	if err != nil {
		return nil, err
	}

	var out []models.Reminder
	if err := c.do(ctx, http.MethodGet, pathMedicine, token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Reminder{}
	}
	return out, nil
}

func (c *HTTPClient) Create(ctx context.Context, p models.ReminderPayload) (models.Reminder, error) {
	token, err := c.credential()
	if err != nil {
		return models.Reminder{}, err
	}

	var out models.Reminder
	if err := c.do(ctx, http.MethodPost, pathMedicine, token, p, &out, http.StatusCreated); err != nil {
		return models.Reminder{}, err
	}
	if out.ID == "" {
		return models.Reminder{}, errors.New("create response has no id")
	}
	return out, nil
}

func (c *HTTPClient) Update(ctx context.Context, id string, p models.ReminderPatch) (models.Reminder, error) {
	token, err := c.credential()
	if err != nil {
		return models.Reminder{}, err
	}

	var out models.Reminder
	if err := c.do(ctx, http.MethodPut, medicinePath(id), token, p, &out, http.StatusOK); err != nil {
		return models.Reminder{}, err
	}
	if out.ID == "" {
		return models.Reminder{}, errors.New("update response has no id")
	}
	return out, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	token, err := c.credential()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, medicinePath(id), token, nil, nil, http.StatusOK, http.StatusNoContent)
}

func medicinePath(id string) string {
	return pathMedicine + "/" + url.PathEscape(id)
}

func (c *HTTPClient) credential() (string, error) {
	if c.creds == nil {
		return "", ErrNotAuthenticated
	}
	token, ok := c.creds.Credential()
	if !ok || token == "" {
		return "", ErrNotAuthenticated
	}
	return token, nil
}

// do sends one JSON request. Any status outside want becomes a
// *RejectedError; transport failures wrap ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any, want ...int) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if !slices.Contains(want, resp.StatusCode) {
		return &RejectedError{Status: resp.StatusCode, Reason: reasonFromBody(raw)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// reasonFromBody returns the backend's "msg" (or "message") field.
func reasonFromBody(raw []byte) string {
	var body struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Msg != "" {
		return strings.TrimSpace(body.Msg)
	}
	return strings.TrimSpace(body.Message)
}
