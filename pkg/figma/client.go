package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/hellenic-development/figma-suggest/pkg/apierror"
)

const figmaAPIBase = "https://api.figma.com/v1"

// maxResponseSize caps how much of a response body is read. Figma files can
// be very large, but anything beyond this is not useful as prompt context.
const maxResponseSize = 50 * 1024 * 1024 // 50MB

// Client is a Figma API client. Every request is a single attempt: a failed
// call is terminal for the run, with the failure classified via apierror.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client, used by tests to point at a local server.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithBaseURL overrides the Figma API base URL.
func WithBaseURL(baseURL string) Option {
	return func(client *Client) {
		client.baseURL = baseURL
	}
}

// NewClient creates a new Figma API client with the provided personal access
// token. The transport keeps connection pooling but disables HTTP/2, which is
// unstable when downloading very large file trees.
func NewClient(accessToken string, opts ...Option) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   false,
	}

	c := &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		httpClient: &http.Client{
			Timeout:   5 * time.Minute,
			Transport: transport,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var (
	fileURLPattern = regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$|\?)`)
	fileKeyPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// ExtractFileKey resolves a file identifier from either a raw file key or a
// full Figma URL (both /file/ and /design/ paths). The URL pattern is anchored
// so lookalike domains are rejected.
func ExtractFileKey(keyOrURL string) (string, error) {
	if fileKeyPattern.MatchString(keyOrURL) {
		return keyOrURL, nil
	}

	matches := fileURLPattern.FindStringSubmatch(keyOrURL)
	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma file reference %q: must be a file key or a figma.com /file/ or /design/ URL", keyOrURL)
	}

	return matches[1], nil
}

// GetFile retrieves the complete file tree from the Figma API, including the
// document structure and the global component, component set, and style tables.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*FileResponse, error) {
	var fileResp FileResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/files/%s", c.baseURL, fileKey), &fileResp); err != nil {
		return nil, fmt.Errorf("fetch file %s: %w", fileKey, err)
	}
	return &fileResp, nil
}

// GetComments retrieves all comments attached to a Figma file.
func (c *Client) GetComments(ctx context.Context, fileKey string) (*CommentsResponse, error) {
	var commentsResp CommentsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/files/%s/comments", c.baseURL, fileKey), &commentsResp); err != nil {
		return nil, fmt.Errorf("fetch comments for %s: %w", fileKey, err)
	}
	return &commentsResp, nil
}

// getJSON performs one authenticated GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-Figma-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierror.New(apierror.KindNetworkOrServer, fmt.Errorf("execute request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return apierror.New(apierror.KindNetworkOrServer, fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return apierror.FromStatusCode(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	return nil
}
