package dataservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/pkg/errors"

	"storefront/pkg/domain/model"
)

// ErrNoRows is returned by single-row lookups that match nothing.
// Repositories translate it into their entity's not-found error.
var ErrNoRows = errors.New("data service: no rows")

// RemoteOperationError carries a failed remote call's HTTP status and the
// message the service provided, verbatim.
type RemoteOperationError struct {
	Status  int
	Message string
}

func (e *RemoteOperationError) Error() string {
	return fmt.Sprintf("data service: %s (status %d)", e.Message, e.Status)
}

// Client talks to the hosted data service: password auth under /auth/v1 and
// table CRUD under /rest/v1. It tracks the live session and notifies
// subscribers whenever it changes.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client

	mu      sync.Mutex
	session *model.Session
	subs    map[int]func(*model.Session)
	nextSub int
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
		subs:    make(map[int]func(*model.Session)),
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, headers http.Header, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.bearer())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "data service request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RemoteOperationError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, "decode response body")
		}
	}
	return nil
}

// bearer is the session's access token once signed in, the anon key before.
func (c *Client) bearer() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		return c.session.AccessToken
	}
	return c.apiKey
}

// errorMessage extracts the service's error text; the auth and rest
// surfaces use different field names.
func errorMessage(data []byte) string {
	var payload struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		switch {
		case payload.Message != "":
			return payload.Message
		case payload.Msg != "":
			return payload.Msg
		case payload.ErrorDescription != "":
			return payload.ErrorDescription
		}
	}
	return string(data)
}
