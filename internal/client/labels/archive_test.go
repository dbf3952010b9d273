package labels

import (
	"context"
	"errors"
	"io"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/easypost-cli/internal/client/config"
	"github.com/dmitrijs2005/easypost-cli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, b)
	return &s3.PutObjectOutput{}, nil
}

func purchased() *models.Shipment {
	return &models.Shipment{
		ID:           "shp_123",
		TrackingCode: "9400111",
		PostageLabel: &models.PostageLabel{
			LabelURL:      "https://easypost-files.example/files/postage_label/abc.png",
			LabelFileType: "image/png",
		},
	}
}

func TestKey_Layout(t *testing.T) {
	at := time.Date(2024, 3, 7, 23, 0, 0, 0, time.UTC)
	k := Key("PROD", "shp_1", ".pdf", at)

	re := regexp.MustCompile(`^labels/prod/2024/03/07/shp_1-[0-9a-f-]{36}\.pdf$`)
	assert.Regexp(t, re, k)
	assert.NotEqual(t, k, Key("PROD", "shp_1", ".pdf", at), "keys must be unique")
}

func TestArchive_UploadsLabel(t *testing.T) {
	p := &fakePutter{}
	a := newS3Archiver("labels-bucket", p)
	a.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	var gotURL string
	a.download = func(_ context.Context, _ *http.Client, url string) ([]byte, string, error) {
		gotURL = url
		return []byte("PNGDATA"), "image/png", nil
	}

	key, err := a.Archive(context.Background(), "TEST", purchased())
	require.NoError(t, err)

	assert.Equal(t, "https://easypost-files.example/files/postage_label/abc.png", gotURL)
	assert.Regexp(t, `^labels/test/2024/01/02/shp_123-.+\.png$`, key)

	require.Len(t, p.inputs, 1)
	in := p.inputs[0]
	assert.Equal(t, "labels-bucket", aws.ToString(in.Bucket))
	assert.Equal(t, key, aws.ToString(in.Key))
	assert.Equal(t, "image/png", aws.ToString(in.ContentType))
	assert.Equal(t, "9400111", in.Metadata["tracking-code"])
	assert.Equal(t, []byte("PNGDATA"), p.bodies[0])
}

func TestArchive_NoLabel(t *testing.T) {
	a := newS3Archiver("b", &fakePutter{})
	_, err := a.Archive(context.Background(), "TEST", &models.Shipment{ID: "shp"})
	require.ErrorIs(t, err, ErrNoLabel)
}

func TestArchive_Errors(t *testing.T) {
	boom := errors.New("boom")

	a := newS3Archiver("b", &fakePutter{})
	a.download = func(context.Context, *http.Client, string) ([]byte, string, error) { return nil, "", boom }
	_, err := a.Archive(context.Background(), "TEST", purchased())
	require.ErrorIs(t, err, boom)

	a = newS3Archiver("b", &fakePutter{err: boom})
	a.download = func(context.Context, *http.Client, string) ([]byte, string, error) { return []byte("x"), "", nil }
	_, err = a.Archive(context.Background(), "TEST", purchased())
	require.ErrorIs(t, err, boom)
}

func TestLabelExt(t *testing.T) {
	assert.Equal(t, ".pdf", labelExt(&models.PostageLabel{LabelFileType: "application/pdf"}))
	assert.Equal(t, ".zpl", labelExt(&models.PostageLabel{LabelURL: "https://x/y/label.zpl?sig=1"}))
	assert.Equal(t, "", labelExt(&models.PostageLabel{}))
}

func TestNewS3Archiver(t *testing.T) {
	_, err := NewS3Archiver(context.Background(), config.ArchiveConfig{})
	require.Error(t, err)

	oldLoad, oldNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() { loadDefaultAWSConfig, newS3ClientFromConfig = oldLoad, oldNew })

	var nOpts int
	loadDefaultAWSConfig = func(_ context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		nOpts = len(optFns)
		return aws.Config{Region: "us-east-1"}, nil
	}
	var applied s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&applied)
		}
		return s3.NewFromConfig(cfg)
	}

	a, err := NewS3Archiver(context.Background(), config.ArchiveConfig{
		Bucket: "b", Region: "us-east-1", Endpoint: "http://localhost:9000",
		AccessKey: "minio", SecretKey: "minio123",
	})
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, 2, nOpts)
	assert.Equal(t, "http://localhost:9000", aws.ToString(applied.BaseEndpoint))
	assert.True(t, applied.UsePathStyle)

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}
	_, err = NewS3Archiver(context.Background(), config.ArchiveConfig{Bucket: "b"})
	require.Error(t, err)
}
