// Package objectstore is the BlobStore adapter for a remote HTTP object
// store. Objects live at /objects/{key}: PUT stores, GET reads and DELETE
// removes. Every call goes through httpclient, so uploads and downloads
// get the breaker, retries and tracing of any other outbound request.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

var (
	_ ports.BlobStore     = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client stores attachment bytes in the remote object store.
type Client struct {
	http   *httpclient.Client
	logger *slog.Logger
}

// New returns a Client sending requests through hc.
func New(hc *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{http: hc, logger: logger}
}

// Put uploads the object under a fresh key inside obj.Prefix.
func (c *Client) Put(ctx context.Context, obj ports.BlobObject, r io.Reader) (string, error) {
	key := path.Join(obj.Prefix, uuid.NewString()+strings.ToLower(path.Ext(obj.Filename)))

	req, err := c.http.NewRequest(ctx, http.MethodPut, objectPath(key), r)
	if err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	req.ContentLength = obj.Size
	req.Header.Set("Content-Type", obj.ContentType)
	req.Header.Set("X-Object-Filename", obj.Filename)

	resp, err := c.do(ctx, req)
	if err != nil {
		return "", err
	}
	defer c.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", c.statusError(ctx, req, resp)
	}
	return key, nil
}

// Open streams the object back. The caller closes the reader.
func (c *Client) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	req, err := c.http.NewRequest(ctx, http.MethodGet, objectPath(key), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building download request: %w", err)
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer c.closeBody(ctx, resp)
		return nil, c.statusError(ctx, req, resp)
	}
	return resp.Body, nil
}

// Delete removes the object. A 404 counts as success.
func (c *Client) Delete(ctx context.Context, key string) error {
	req, err := c.http.NewRequest(ctx, http.MethodDelete, objectPath(key), http.NoBody)
	if err != nil {
		return fmt.Errorf("building delete request: %w", err)
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	defer c.closeBody(ctx, resp)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		return c.statusError(ctx, req, resp)
	}
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string { return c.http.Name() }

// HealthCheck reports the breaker state of the underlying client.
func (c *Client) HealthCheck(ctx context.Context) error { return c.http.HealthCheck(ctx) }

// do sends req. When retries run out on a retryable status the response is
// still returned so its status can be translated.
func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(ctx, req)
	if err == nil {
		return resp, nil
	}
	if resp != nil {
		return resp, nil
	}
	c.logger.ErrorContext(ctx, "object store request failed",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Any("error", err),
	)
	return nil, fmt.Errorf("%w: object store %s %s: %w", domain.ErrUnavailable, req.Method, req.URL.Path, err)
}

func (c *Client) statusError(ctx context.Context, req *http.Request, resp *http.Response) error {
	err := TranslateHTTPError(resp)
	c.logger.ErrorContext(ctx, "unexpected object store status",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Any("error", err),
	)
	return err
}

func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}

func objectPath(key string) string {
	return "/objects/" + key
}

