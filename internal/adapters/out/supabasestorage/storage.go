// Package supabasestorage uploads proof-of-receipt photos to a Supabase
// storage bucket over its REST API.
package supabasestorage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jastip/internal/pkg/errs"
)

// Client implements ports.ProofStorage against the Supabase object store.
type Client struct {
	baseURL    string
	bucket     string
	serviceKey string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a storage client for the given project URL and bucket.
// The service key must grant insert access to the bucket.
func NewClient(baseURL, bucket, serviceKey string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if bucket == "" {
		return nil, errs.NewValueIsRequiredError("bucket")
	}
	if serviceKey == "" {
		return nil, errs.NewValueIsRequiredError("serviceKey")
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		bucket:     bucket,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}, nil
}

// Upload stores the payload under an object name derived from pathHint and
// returns its public URL. A millisecond timestamp prefix keeps repeated
// uploads for the same hint from overwriting each other.
func (c *Client) Upload(ctx context.Context, pathHint string, payload io.Reader) (string, error) {
	if payload == nil {
		return "", errs.NewValueIsRequiredError("payload")
	}

	objectPath := fmt.Sprintf("inbound/%d-%s", c.now().UnixMilli(), sanitizeHint(pathHint))
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, payload)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("storage upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, objectPath), nil
}

// sanitizeHint turns an arbitrary hint into a safe object name segment.
func sanitizeHint(hint string) string {
	if hint == "" {
		return "proof"
	}
	return url.PathEscape(hint)
}
