// Package netx uploads archive bundles to presigned object-storage URLs.
package netx

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type Uploader struct {
	client *resty.Client
}

func NewUploader(timeout time.Duration) *Uploader {
	return &Uploader{client: resty.New().SetTimeout(timeout)}
}

// PutPresigned sends body with a PUT to a presigned URL. The content type
// must match the one the URL was signed with.
func (u *Uploader) PutPresigned(ctx context.Context, url, contentType string, body []byte) error {
	resp, err := u.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Put(url)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status(), resp.String())
	}
	return nil
}

// Get downloads the object behind a presigned URL.
func (u *Uploader) Get(ctx context.Context, url string) ([]byte, error) {
	resp, err := u.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("download failed: %s", resp.Status())
	}
	return resp.Body(), nil
}
