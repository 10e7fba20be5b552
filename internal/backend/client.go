// Package backend sends routed requests to the search, upload and query
// services and extracts the reply text from their JSON responses.
package backend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	pserrors "github.com/zhubert/switchboard/internal/errors"
	"github.com/zhubert/switchboard/internal/logger"
	"github.com/zhubert/switchboard/internal/router"
)

// GenericErrorMessage is shown when a failed response carries no usable message.
const GenericErrorMessage = "An error occurred. Please try again later."

// RequestIDHeader tags each request so backend logs can be matched to ours.
const RequestIDHeader = "X-Request-ID"

// successFields are checked in order; the first present one is the reply.
var successFields = []string{"response", "data", "message"}

// ClientError is returned when a request fails at the transport level, with a
// non-2xx status, or with an explicit error status in the body.
type ClientError struct {
	Endpoint   router.Endpoint
	StatusCode int    // 0 for transport failures
	Message    string // Text safe to show the user
	Err        error
}

func (e *ClientError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Endpoint.Path(), e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Endpoint.Path(), e.Message)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// Client posts JSON payloads to the backend services.
type Client struct {
	baseURL    string
	httpClient *resty.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHeaders adds headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.httpClient.SetHeaders(headers)
	}
}

// New creates a client for the services rooted at baseURL. Requests are not
// retried and carry no client-side timeout.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", "switchboard/1.0").
		SetRetryCount(0)

	c := &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        logger.WithComponent("backend"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the root all endpoint paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send posts the decision's payload to its endpoint and returns the reply text.
// Failures are *ClientError, or a decode error for unusable 2xx bodies.
func (c *Client) Send(ctx context.Context, d router.Decision) (string, error) {
	path := d.Endpoint.Path()
	requestID := uuid.New().String()
	log := c.log.With("requestID", requestID, "endpoint", path)

	log.Debug("sending request")
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(RequestIDHeader, requestID).
		SetBody(d.Payload).
		Post(path)
	if err != nil {
		log.Warn("request failed", "error", err)
		return "", &ClientError{
			Endpoint: d.Endpoint,
			Message:  GenericErrorMessage,
			Err:      pserrors.RequestFailed(path, err),
		}
	}

	body := resp.Body()
	log.Debug("response received", "status", resp.StatusCode(), "bytes", len(body))

	if !resp.IsSuccess() {
		return "", &ClientError{
			Endpoint:   d.Endpoint,
			StatusCode: resp.StatusCode(),
			Message:    failureMessage(body, false),
			Err:        fmt.Errorf("unexpected status %s", resp.Status()),
		}
	}

	if !gjson.ValidBytes(body) {
		return "", pserrors.ResponseDecodeFailed(path, fmt.Errorf("body is not valid JSON"))
	}

	result := gjson.ParseBytes(body)
	if result.Get("status").String() == "error" {
		return "", &ClientError{
			Endpoint:   d.Endpoint,
			StatusCode: resp.StatusCode(),
			Message:    failureMessage(body, true),
			Err:        fmt.Errorf("backend reported an error status"),
		}
	}

	reply, ok := extractReply(result)
	if !ok {
		return "", pserrors.ResponseDecodeFailed(path, fmt.Errorf("no %s field in response", strings.Join(successFields, "/")))
	}
	return reply, nil
}

// failureMessage picks the user-facing text for a failed response. The
// message field only counts when the body also reports status "error".
func failureMessage(body []byte, statusError bool) string {
	if !gjson.ValidBytes(body) {
		return GenericErrorMessage
	}
	result := gjson.ParseBytes(body)
	if msg := result.Get("error"); msg.Type == gjson.String && msg.String() != "" {
		return msg.String()
	}
	if statusError || result.Get("status").String() == "error" {
		if msg := result.Get("message"); msg.Type == gjson.String && msg.String() != "" {
			return msg.String()
		}
	}
	return GenericErrorMessage
}

func extractReply(result gjson.Result) (string, bool) {
	// Some services reply with a bare JSON string
	if result.Type == gjson.String {
		return result.String(), result.String() != ""
	}
	if !result.IsObject() {
		return "", false
	}
	for _, field := range successFields {
		v := result.Get(field)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		return formatValue(v), true
	}
	return "", false
}

func formatValue(v gjson.Result) string {
	switch {
	case v.Type == gjson.String:
		return v.String()
	case v.IsArray():
		if list, ok := formatSearchResults(v); ok {
			return list
		}
	}
	return v.Raw
}

// formatSearchResults renders an array of {title,url,content} objects as a
// markdown list. Any element without a url makes the array unformattable.
func formatSearchResults(v gjson.Result) (string, bool) {
	items := v.Array()
	if len(items) == 0 {
		return "No results found.", true
	}

	var sb strings.Builder
	for i, item := range items {
		url := item.Get("url")
		if !item.IsObject() || url.Type != gjson.String {
			return "", false
		}
		title := item.Get("title").String()
		if title == "" {
			title = url.String()
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "- [%s](%s)", title, url.String())
		if content := strings.TrimSpace(item.Get("content").String()); content != "" {
			sb.WriteString("\n  ")
			sb.WriteString(content)
		}
	}
	return sb.String(), true
}
