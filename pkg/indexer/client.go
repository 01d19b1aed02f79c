package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL   = "https://api.tokenindexer.io"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "tokenindexer-sdk-go"

	HeaderAPIKey    = "x-api-key"
	HeaderRequestID = "x-request-id"
)

// Config configures a Client. Only APIKey is required.
type Config struct {
	// APIKey is sent with every request. Required.
	APIKey string
	// BaseURL overrides DefaultBaseURL. One trailing slash is removed.
	BaseURL string
	// Timeout bounds each call. Zero or negative means DefaultTimeout.
	Timeout time.Duration
	// Transport performs the HTTP exchange. Defaults to an *http.Client.
	Transport Transport
	// Logger receives debug entries for every request. Defaults to a no-op logger.
	Logger *zap.Logger
	// UserAgent overrides DefaultUserAgent.
	UserAgent string
	// Headers are added to every request. They cannot replace the API key,
	// content type or request ID headers.
	Headers map[string]string
	// DisableCompression stops the client from asking for br/gzip responses.
	DisableCompression bool
}

// Client is a typed client for the token indexer REST API. It holds no
// per-call state and is safe for concurrent use.
type Client struct {
	apiKey             string
	baseURL            string
	timeout            time.Duration
	transport          Transport
	logger             *zap.Logger
	userAgent          string
	headers            map[string]string
	disableCompression bool
}

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	apiKey := strings.TrimSpace(config.APIKey)
	if apiKey == "" {
		return nil, &ConfigurationError{Message: "API key is required"}
	}

	baseURL, err := normalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := config.Transport
	if transport == nil {
		transport = &http.Client{}
	}
	if !usableTransport(transport) {
		return nil, &ConfigurationError{Message: "transport is required"}
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	userAgent := strings.TrimSpace(config.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		name := http.CanonicalHeaderKey(strings.TrimSpace(key))
		trimmed := strings.TrimSpace(value)
		if name != "" && trimmed != "" {
			headers[name] = trimmed
		}
	}

	return &Client{
		apiKey:             apiKey,
		baseURL:            baseURL,
		timeout:            timeout,
		transport:          transport,
		logger:             logger,
		userAgent:          userAgent,
		headers:            headers,
		disableCompression: config.DisableCompression,
	}, nil
}

// APIKey returns the configured API key.
func (c *Client) APIKey() string {
	return c.apiKey
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-call timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// TimeoutMillis returns the per-call timeout in milliseconds.
func (c *Client) TimeoutMillis() int64 {
	return c.timeout.Milliseconds()
}

// BuildURL joins the base URL, path and the non-empty query.
func (c *Client) BuildURL(path string, query url.Values) string {
	normalizedPath := path
	if !strings.HasPrefix(normalizedPath, "/") {
		normalizedPath = "/" + normalizedPath
	}
	requestURL := c.baseURL + normalizedPath
	if encoded := query.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}
	return requestURL
}

func (c *Client) request(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body any,
) ([]byte, error) {
	var requestBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, newNetworkError("failed to encode request body", err)
		}
		requestBody = bytes.NewReader(payload)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(callCtx, method, c.BuildURL(path, query), requestBody)
	if err != nil {
		return nil, newNetworkError("failed to create request", err)
	}

	requestID := uuid.NewString()
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", c.userAgent)
	request.Header.Set(HeaderAPIKey, c.apiKey)
	request.Header.Set(HeaderRequestID, requestID)
	if !c.disableCompression {
		request.Header.Set("Accept-Encoding", acceptEncoding)
	}

	logger := c.logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)
	logger.Debug("indexer request started")
	started := time.Now()

	response, err := roundTrip(callCtx, c.transport, request)
	if err != nil {
		if response != nil && response.Body != nil {
			response.Body.Close()
		}
		failure := c.transportFailure(ctx, callCtx, err)
		logger.Debug("indexer request failed", zap.Duration("duration", time.Since(started)), zap.Error(failure))
		return nil, failure
	}
	if response == nil {
		failure := newNetworkError("transport returned no response", nil)
		logger.Debug("indexer request failed", zap.Duration("duration", time.Since(started)), zap.Error(failure))
		return nil, failure
	}
	if response.Body == nil {
		response.Body = http.NoBody
	}
	defer response.Body.Close()

	responseBody, err := readBody(response)
	if err != nil {
		failure := c.transportFailure(ctx, callCtx, err)
		logger.Debug("indexer response unreadable", zap.Duration("duration", time.Since(started)), zap.Error(failure))
		return nil, failure
	}

	logger.Debug("indexer request finished",
		zap.Int("status", response.StatusCode),
		zap.Duration("duration", time.Since(started)),
	)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, apiErrorFromResponse(response, responseBody)
	}

	return responseBody, nil
}

func (c *Client) requestJSON(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body any,
	target any,
) error {
	responseBody, err := c.request(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(responseBody, target); err != nil {
		return newNetworkError("failed to decode indexer response", err)
	}
	return nil
}

// transportFailure maps an error raised before a complete response was read.
func (c *Client) transportFailure(parent context.Context, callCtx context.Context, err error) error {
	var sdkErr Error
	if errors.As(err, &sdkErr) {
		return err
	}
	if parentErr := parent.Err(); parentErr != nil {
		return newNetworkError("request cancelled", parentErr)
	}
	if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{Timeout: c.timeout, Cause: err}
	}
	return newNetworkError(transportMessage(err), err)
}

// transportMessage strips the method and URL prefix that *url.Error adds.
func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}

func apiErrorFromResponse(response *http.Response, body []byte) *APIError {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err == nil && IsAPIError(parsed) {
		var payload APIErrorPayload
		if err := json.Unmarshal(body, &payload); err == nil {
			status := payload.Status
			if status == 0 {
				status = response.StatusCode
			}
			return &APIError{
				Status:    status,
				ErrorType: payload.Error,
				Message:   payload.Message,
				Body:      body,
			}
		}
	}

	return &APIError{
		Status:    response.StatusCode,
		ErrorType: ErrorTypeHTTP,
		Message:   statusText(response),
		Body:      body,
	}
}

func statusText(response *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(response.Status, strconv.Itoa(response.StatusCode)))
	if text == "" {
		text = http.StatusText(response.StatusCode)
	}
	if text == "" {
		text = fmt.Sprintf("HTTP %d", response.StatusCode)
	}
	return text
}

func normalizeBaseURL(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	trimmed = strings.TrimSuffix(trimmed, "/")

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", &ConfigurationError{Message: fmt.Sprintf("invalid base URL: %v", err)}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", &ConfigurationError{Message: "invalid base URL: scheme must be http or https"}
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", &ConfigurationError{Message: "invalid base URL: host is required"}
	}
	return trimmed, nil
}

func percentPath(value string) string {
	return url.PathEscape(value)
}

func addQueryInt(values url.Values, key string, value *int64) {
	if value != nil {
		values.Set(key, strconv.FormatInt(*value, 10))
	}
}
