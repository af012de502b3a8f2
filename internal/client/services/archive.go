package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/weekjournal/internal/client/client"
	"github.com/dmitrijs2005/weekjournal/internal/common"
)

const archiveContentType = "application/json"

// Bundle is the archive format: the stored envelopes as they are, never
// decrypted.
type Bundle struct {
	Version     int          `json:"version"`
	CreatedAt   time.Time    `json:"created_at"`
	Reflections []BundleItem `json:"reflections"`
}

type BundleItem struct {
	WeekStartDate    string `json:"week_start_date"`
	IsCompleted      bool   `json:"is_completed"`
	EncryptedContent string `json:"encrypted_content"`
}

// Transfer moves bytes to and from presigned URLs.
type Transfer interface {
	PutPresigned(ctx context.Context, url, contentType string, body []byte) error
	Get(ctx context.Context, url string) ([]byte, error)
}

type ArchiveService struct {
	client   client.Client
	transfer Transfer
	now      func() time.Time
}

func NewArchiveService(c client.Client, t Transfer) *ArchiveService {
	return &ArchiveService{client: c, transfer: t, now: time.Now}
}

// Upload bundles every stored reflection and uploads it to object storage.
// It returns the object key, which Download accepts later.
func (s *ArchiveService) Upload(ctx context.Context) (string, int, error) {
	items, err := s.client.ListReflections(ctx, true)
	if err != nil {
		return "", 0, storageFailure(err)
	}

	b := Bundle{Version: 1, CreatedAt: s.now().UTC(), Reflections: make([]BundleItem, 0, len(items))}
	for _, it := range items {
		b.Reflections = append(b.Reflections, BundleItem{
			WeekStartDate:    it.WeekStartDate.String(),
			IsCompleted:      it.IsCompleted,
			EncryptedContent: it.EncryptedContent,
		})
	}
	body, err := json.Marshal(b)
	if err != nil {
		return "", 0, fmt.Errorf("archive encode: %w", err)
	}

	key, url, err := s.client.ArchiveUploadURL(ctx)
	if err != nil {
		return "", 0, storageFailure(err)
	}
	if err := s.transfer.PutPresigned(ctx, url, archiveContentType, body); err != nil {
		return "", 0, storageFailure(err)
	}
	return key, len(b.Reflections), nil
}

// Download fetches an uploaded bundle. The envelopes inside stay encrypted.
func (s *ArchiveService) Download(ctx context.Context, key string) (*Bundle, error) {
	url, err := s.client.ArchiveDownloadURL(ctx, key)
	if err != nil {
		return nil, storageFailure(err)
	}
	body, err := s.transfer.Get(ctx, url)
	if err != nil {
		return nil, storageFailure(err)
	}

	var b Bundle
	if err := json.Unmarshal(body, &b); err != nil {
		return nil, fmt.Errorf("%w: archive: %w", common.ErrMalformedEnvelope, err)
	}
	return &b, nil
}
