package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	sc "github.com/dmitrijs2005/weekjournal/internal/server/config"
	"github.com/google/uuid"
)

// presignExpiry bounds how long an archive URL stays usable.
const presignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ArchiveService hands out presigned S3 URLs for encrypted archives. Object
// keys are scoped by user id, so one user cannot request another's archive.
type ArchiveService struct {
	config *sc.Config
	now    func() time.Time
}

func NewArchiveService(cfg *sc.Config) *ArchiveService {
	return &ArchiveService{config: cfg, now: time.Now}
}

func (s *ArchiveService) archiveKey(userID string) string {
	d := s.now().UTC()
	return fmt.Sprintf("archives/%s/%s-%s.json", userID, d.Format("20060102T150405Z"), uuid.New())
}

func (s *ArchiveService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})
	return s3.NewPresignClient(client), nil
}

// UploadURL returns a fresh object key and a presigned PUT URL for it.
func (s *ArchiveService) UploadURL(ctx context.Context, userID string) (key, url string, err error) {
	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", err
	}

	key = s.archiveKey(userID)
	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.S3Bucket),
		Key:         aws.String(key),
		ContentType: aws.String("application/json"),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", err
	}
	archiveURLsIssued.WithLabelValues("put").Inc()
	return key, req.URL, nil
}

// DownloadURL presigns a GET for key. Keys outside the user's prefix are
// reported as common.ErrorNotFound.
func (s *ArchiveService) DownloadURL(ctx context.Context, userID, key string) (string, error) {
	if !strings.HasPrefix(key, "archives/"+userID+"/") {
		return "", common.ErrorNotFound
	}
	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}
	archiveURLsIssued.WithLabelValues("get").Inc()
	return req.URL, nil
}
