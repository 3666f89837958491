package storage

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	input *s3.PutObjectInput
	err   error
}

func (u *fakeUploader) Upload(_ context.Context, input *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	u.input = input
	return &manager.UploadOutput{}, u.err
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func TestCoverStore_PutCover(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		body      []byte
		uploadErr error
		wantErr   error
		wantAny   bool
	}{
		{
			name: "ok png",
			body: pngHeader,
		},
		{
			name:    "empty",
			body:    nil,
			wantErr: ErrEmpty,
		},
		{
			name:    "plain text",
			body:    []byte("definitely not an image"),
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "too large",
			body:    bytes.Repeat([]byte{0}, MaxCoverSize+1),
			wantErr: ErrTooLarge,
		},
		{
			name:      "upload fails",
			body:      pngHeader,
			uploadErr: errors.New("AccessDenied"),
			wantAny:   true,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			up := &fakeUploader{err: test.uploadErr}
			s := &CoverStore{uploader: up, bucket: "covers", region: "eu-west-1"}

			url, err := s.PutCover(context.Background(), "b1", test.body)
			switch {
			case test.wantErr != nil:
				require.ErrorIs(t, err, test.wantErr)
				require.Nil(t, up.input)
			case test.wantAny:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				require.True(t, strings.HasPrefix(url, "https://covers.s3.eu-west-1.amazonaws.com/bookcovers/b1-"))
				require.True(t, strings.HasSuffix(url, ".png"))
				require.Equal(t, "image/png", aws.ToString(up.input.ContentType))
			}
		})
	}
}
