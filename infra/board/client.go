package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/CrestNiraj12/terminalboard/domain"
	"github.com/CrestNiraj12/terminalboard/infra/auth"
)

// Client is a thin HTTP wrapper for the board API.
// It handles base URL construction, JSON bodies, bearer tokens, request ids,
// and turns non-2xx responses into *domain.HTTPError.
type Client struct {
	baseURL       string
	tokenProvider auth.TokenProvider
	http          *http.Client
	timeout       time.Duration
	log           logrus.FieldLogger
	newRequestID  func() string
}

// NewClient creates a board API client. A nil logger discards log output.
func NewClient(baseURL string, tp auth.TokenProvider, timeout time.Duration, log logrus.FieldLogger) *Client {
	if tp == nil {
		tp = auth.Anonymous{}
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		tokenProvider: tp,
		http:          &http.Client{},
		timeout:       timeout,
		log:           log,
		newRequestID:  uuid.NewString,
	}
}

// request describes one API call.
type request struct {
	// op is a short name used in errors and logs.
	op     string
	method string
	path   string
	query  url.Values
	body   any
	// fallback is shown when the backend sends no error text.
	fallback string
	// accept reports whether a status is a success; nil means any 2xx.
	accept func(int) bool
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func is2xx(status int) bool { return status >= 200 && status < 300 }

func (c *Client) do(ctx context.Context, r request) (response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	token, err := c.tokenProvider.AccessToken()
	if err != nil {
		return response{}, fmt.Errorf("auth: %w", err)
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return response{}, fmt.Errorf("encoding %s request: %w", r.op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return response{}, fmt.Errorf("creating request: %w", err)
	}

	reqID := c.newRequestID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	entry := c.log.WithFields(logrus.Fields{
		"op":         r.op,
		"method":     r.method,
		"path":       r.path,
		"request_id": reqID,
	})

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		entry.WithError(err).Warn("request failed")
		return response{}, &domain.NetworkError{Op: r.op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		entry.WithError(err).Warn("reading response failed")
		return response{}, &domain.NetworkError{Op: r.op, Err: fmt.Errorf("reading response: %w", err)}
	}

	entry = entry.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(started).String(),
	})

	accept := r.accept
	if accept == nil {
		accept = is2xx
	}
	if !accept(resp.StatusCode) {
		entry.Warn("backend rejected request")
		return response{}, &domain.HTTPError{
			Op:      r.op,
			Status:  resp.StatusCode,
			Body:    strings.TrimSpace(string(data)),
			Default: r.fallback,
		}
	}

	entry.Debug("request done")
	return response{status: resp.StatusCode, header: resp.Header, body: data}, nil
}

func decode[T any](op string, data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("parsing %s response: %w", op, err)
	}
	return out, nil
}

// idFromLocation extracts the trailing numeric segment of a Location header,
// e.g. "/post/42" -> 42. Missing or non-numeric values yield 0.
func idFromLocation(loc string) int64 {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return 0
	}
	if u, err := url.Parse(loc); err == nil {
		loc = u.Path
	}
	id, err := strconv.ParseInt(path.Base(strings.TrimRight(loc, "/")), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
