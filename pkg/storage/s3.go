package storage

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base32"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3Config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const MaxCoverSize = 5 << 20

var (
	ErrUnsupportedType = errors.New("cover must be a jpeg, png, webp or gif image")
	ErrTooLarge        = errors.New("cover exceeds 5MB")
	ErrEmpty           = errors.New("cover is empty")
)

var coverTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

type S3 struct {
	AccessKeyID     string `yaml:"accessKeyId" envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secretAccessKey" envconfig:"S3_SECRET_ACCESS_KEY"`
	Region          string `yaml:"region" envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `yaml:"bucket" envconfig:"S3_BUCKET"`
}

func (c S3) Enabled() bool {
	return c.Bucket != "" && c.AccessKeyID != ""
}

// NewS3Client configures an S3 client with static credentials.
func NewS3Client(ctx context.Context, cfg S3) (*s3.Client, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	awsCfg, err := s3Config.LoadDefaultConfig(ctx, s3Config.WithCredentialsProvider(creds), s3Config.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, "LoadDefaultConfig")
	}
	return s3.NewFromConfig(awsCfg), nil
}

type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// CoverStore keeps book cover images in a bucket and hands back their public URL.
type CoverStore struct {
	uploader uploader
	bucket   string
	region   string
}

func NewCoverStore(client *s3.Client, cfg S3) *CoverStore {
	return &CoverStore{
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
	}
}

// PutCover validates the image by content and uploads it under bookcovers/<bookID>-<random><ext>.
func (s *CoverStore) PutCover(ctx context.Context, bookID string, body []byte) (string, error) {
	if len(body) == 0 {
		return "", ErrEmpty
	}
	if len(body) > MaxCoverSize {
		return "", ErrTooLarge
	}
	mtype := mimetype.Detect(body)
	if !mimetype.EqualsAny(mtype.String(), coverTypes...) {
		return "", ErrUnsupportedType
	}

	randomBytes := make([]byte, 10)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	suffix := strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes))
	key := "bookcovers/" + bookID + "-" + suffix + mtype.Extension()

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: int64(len(body)),
		ContentType:   aws.String(mtype.String()),
	})
	if err != nil {
		return "", errors.Wrap(err, "uploader.Upload")
	}
	return "https://" + s.bucket + ".s3." + s.region + ".amazonaws.com/" + key, nil
}
