package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client bound to a base URL.
type Client struct {
	baseURL            string
	client             *http.Client
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	Logger              HTTPLogger
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 50
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 10
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 10 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 5 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}
	if opts.Logger == nil {
		opts.Logger = NewZapHTTPLogger()
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
		TLSHandshakeTimeout: opts.ConnectionTimeout,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		logger:             opts.Logger,
	}
}

// BaseURL returns the normalized base URL of the client.
func (hc *Client) BaseURL() string {
	return hc.baseURL
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// StatusError is returned when the upstream answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// doRequest sends an HTTP request and decodes the body into successResp or errorResp depending on the status.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams url.Values, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	target := hc.buildURL(path)
	if len(queryParams) > 0 {
		separator := "?"
		if strings.Contains(target, "?") {
			separator = "&"
		}
		target += separator + queryParams.Encode()
	}

	bodyReader, contentType, rawBody, err := hc.encodeBody(body)
	if err != nil {
		return nil, nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, nil, 0, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	loggedHeaders := flattenHeaders(req.Header)
	loggedURL := redactURL(req.URL)
	hc.logger.LogRequest(method, loggedURL, loggedHeaders, rawBody)
	start := time.Now()

	resp, err := hc.client.Do(req)
	if err != nil {
		hc.logger.LogResponseError(method, loggedURL, loggedHeaders, rawBody, 0, "", time.Since(start).Milliseconds(), err)
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		hc.logger.LogResponseError(method, loggedURL, loggedHeaders, rawBody, resp.StatusCode, "", latency, err)
		return nil, nil, resp.StatusCode, err
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		hc.logger.LogResponseSuccess(method, loggedURL, loggedHeaders, rawBody, resp.StatusCode, string(bodyBytes), latency)
		if successResp != nil {
			if err = hc.unmarshalResponse(bodyBytes, respContentType, successResp); err != nil {
				return nil, nil, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode}
	hc.logger.LogResponseError(method, loggedURL, loggedHeaders, rawBody, resp.StatusCode, string(bodyBytes), latency, statusErr)

	if resp.StatusCode == http.StatusNotFound && hc.dismiss404 {
		return nil, nil, resp.StatusCode, nil
	}

	if errorResp != nil {
		if decodeErr := hc.unmarshalResponse(bodyBytes, respContentType, errorResp); decodeErr != nil {
			return nil, nil, resp.StatusCode, statusErr
		}
		return nil, errorResp, resp.StatusCode, statusErr
	}

	return nil, nil, resp.StatusCode, statusErr
}

// encodeBody prepares the request body according to its type and the default content type
func (hc *Client) encodeBody(body any) (io.Reader, string, string, error) {
	if body == nil {
		return nil, "", "", nil
	}

	switch b := body.(type) {
	case string:
		return bytes.NewBufferString(b), "text/plain", b, nil
	case []byte:
		return bytes.NewBuffer(b), "application/octet-stream", "", nil
	}

	var (
		encoded []byte
		err     error
	)
	contentType := hc.defaultContentType
	switch contentType {
	case "application/xml":
		encoded, err = xml.Marshal(body)
	default:
		encoded, err = json.Marshal(body)
		contentType = "application/json"
	}
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to marshal request body: %w", err)
	}
	return bytes.NewBuffer(encoded), contentType, string(encoded), nil
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		// NWS answers with application/geo+json, so anything else is decoded as JSON.
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL joins the base URL and path. Absolute URLs are used as they are.
func (hc *Client) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

func flattenHeaders(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))
	for key := range header {
		flat[key] = header.Get(key)
	}
	return flat
}

// redactURL hides credentials passed in the query string
func redactURL(u *url.URL) string {
	query := u.Query()
	if !query.Has("apikey") {
		return u.String()
	}
	query.Set("apikey", "***")
	clone := *u
	clone.RawQuery = query.Encode()
	return clone.String()
}
