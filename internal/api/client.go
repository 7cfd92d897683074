package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"lavka/internal/config"
)

const (
	apiPrefix         = "/api"
	sessionCookieName = "session"

	// Generic indicator for transport-level failures; the server never saw
	// the request, so there is no message to relay.
	networkErrMessage = "network error"
)

// Form marks a body that must be sent as multipart form data. The
// transport sets the content type (and boundary) itself.
type Form map[string]string

// Client speaks JSON to the storefront server. The Flask session cookie
// is captured from auth responses and persisted so separate invocations
// share one login, the same way the daemon token file works elsewhere.
type Client struct {
	baseURL     string
	sessionPath string
	session     string
	http        *http.Client
}

func New(baseURL string) (*Client, error) {
	sessionPath, err := config.SessionPath()
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		sessionPath: sessionPath,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	_ = c.loadSession()
	return c, nil
}

func NewWithBaseURL(baseURL, sessionPath string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		sessionPath: sessionPath,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Call performs one request against the API prefix and normalizes the
// outcome. It never returns a Go error: transport failures come back as
// Result{OK: false} so callers have a single failure signal to check.
// One attempt per call, no retries.
func (c *Client) Call(ctx context.Context, method, path string, body any) Result {
	return c.do(ctx, method, apiPrefix+path, body)
}

func (c *Client) Get(ctx context.Context, path string) Result {
	return c.Call(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) Result {
	return c.Call(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) Result {
	return c.Call(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) Result {
	return c.Call(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) Result {
	reader, contentType, err := encodeBody(body)
	if err != nil {
		return Result{Err: "invalid request body", Payload: emptyObject()}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Result{Err: networkErrMessage, Payload: emptyObject()}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: c.session})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Err: networkErrMessage, Payload: emptyObject()}
	}
	defer resp.Body.Close()
	c.captureSession(resp)

	payload := emptyObject()
	if data, err := io.ReadAll(resp.Body); err == nil {
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && json.Valid(trimmed) {
			payload = json.RawMessage(trimmed)
		}
	}

	res := Result{
		OK:      resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status:  resp.StatusCode,
		Payload: payload,
	}
	if !res.OK {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(payload, &failure)
		if failure.Error != "" {
			res.Err = failure.Error
		} else {
			res.Err = resp.Status
		}
	}
	return res
}

func encodeBody(body any) (io.Reader, string, error) {
	switch payload := body.(type) {
	case nil:
		return nil, "", nil
	case Form:
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := writer.WriteField(key, payload[key]); err != nil {
				return nil, "", err
			}
		}
		if err := writer.Close(); err != nil {
			return nil, "", err
		}
		return buf, writer.FormDataContentType(), nil
	default:
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

func (c *Client) captureSession(resp *http.Response) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name != sessionCookieName {
			continue
		}
		if cookie.MaxAge < 0 || cookie.Value == "" {
			c.session = ""
			_ = c.clearSession()
			continue
		}
		if cookie.Value != c.session {
			c.session = cookie.Value
			_ = c.saveSession()
		}
	}
}

func (c *Client) loadSession() error {
	if c.sessionPath == "" {
		return nil
	}
	data, err := os.ReadFile(c.sessionPath)
	if err != nil {
		if os.IsNotExist(err) {
			c.session = ""
			return nil
		}
		return err
	}
	c.session = strings.TrimSpace(string(data))
	return nil
}

func (c *Client) saveSession() error {
	if c.sessionPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.sessionPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.sessionPath, []byte(c.session+"\n"), 0o600)
}

func (c *Client) clearSession() error {
	if c.sessionPath == "" {
		return nil
	}
	err := os.Remove(c.sessionPath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// HasSession reports whether a persisted login is present. It says
// nothing about whether the server still honors it.
func (c *Client) HasSession() bool {
	return c != nil && c.session != ""
}
