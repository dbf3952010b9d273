// Package labels copies purchased postage label files to S3-compatible
// object storage.
package labels

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/easypost-cli/internal/client/config"
	"github.com/dmitrijs2005/easypost-cli/internal/client/models"
	"github.com/dmitrijs2005/easypost-cli/internal/netx"
	"github.com/google/uuid"
)

// ErrNoLabel is returned for shipments without a postage label URL.
var ErrNoLabel = errors.New("shipment has no postage label")

// Archiver stores a copy of a shipment's label and returns its object key.
type Archiver interface {
	Archive(ctx context.Context, mode string, s *models.Shipment) (string, error)
}

// objectPutter is the part of *s3.Client the archiver uses.
type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// downloadFunc fetches a label; netx.Download in production.
type downloadFunc func(ctx context.Context, client *http.Client, url string) ([]byte, string, error)

// S3Archiver implements Archiver on an S3 bucket.
type S3Archiver struct {
	bucket   string
	s3       objectPutter
	download downloadFunc
	now      func() time.Time
}

var _ Archiver = (*S3Archiver)(nil)

var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// NewS3Archiver builds an archiver for cfg.Bucket. Static keys are used when
// both are set, otherwise the default AWS credential chain applies. A custom
// endpoint switches to path-style addressing for MinIO and friends.
func NewS3Archiver(ctx context.Context, cfg config.ArchiveConfig) (*S3Archiver, error) {
	if !cfg.Enabled() {
		return nil, errors.New("archive bucket is not configured")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Archiver(cfg.Bucket, client), nil
}

func newS3Archiver(bucket string, p objectPutter) *S3Archiver {
	return &S3Archiver{bucket: bucket, s3: p, download: netx.Download, now: time.Now}
}

// Archive downloads the label of s and uploads it under Key.
func (a *S3Archiver) Archive(ctx context.Context, mode string, s *models.Shipment) (string, error) {
	if s.PostageLabel == nil || s.PostageLabel.LabelURL == "" {
		return "", ErrNoLabel
	}
	lbl := s.PostageLabel

	data, contentType, err := a.download(ctx, nil, lbl.LabelURL)
	if err != nil {
		return "", fmt.Errorf("download label: %w", err)
	}
	if contentType == "" {
		contentType = lbl.LabelFileType
	}

	key := Key(mode, s.ID, labelExt(lbl), a.now())
	in := &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
		Metadata: map[string]string{
			"shipment-id":   s.ID,
			"tracking-code": s.TrackingCode,
		},
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := a.s3.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("upload label: %w", err)
	}
	return key, nil
}

// Key lays archive objects out as labels/<mode>/<yyyy>/<mm>/<dd>/<shipment>-<uuid><ext>.
func Key(mode, shipmentID, ext string, at time.Time) string {
	at = at.UTC()
	return fmt.Sprintf("labels/%s/%04d/%02d/%02d/%s-%s%s",
		strings.ToLower(mode), at.Year(), int(at.Month()), at.Day(), shipmentID, uuid.NewString(), ext)
}

func labelExt(l *models.PostageLabel) string {
	switch strings.ToLower(l.LabelFileType) {
	case "image/png":
		return ".png"
	case "application/pdf":
		return ".pdf"
	case "application/zpl":
		return ".zpl"
	case "application/epl2":
		return ".epl2"
	}
	if u, err := url.Parse(l.LabelURL); err == nil {
		return path.Ext(u.Path)
	}
	return ""
}
