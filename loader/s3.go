package loader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/lingokit/lingo"
)

// S3 fetches bundles from S3-compatible object storage. The key pattern must
// contain one %s verb that receives the locale, e.g. "i18n/%s.json".
// Client construction (region, credentials, custom endpoints) is the
// caller's responsibility.
type S3 struct {
	client     *s3.Client
	bucket     string
	keyPattern string
}

// NewS3 creates an object-storage-backed bundle loader.
func NewS3(client *s3.Client, bucket, keyPattern string) *S3 {
	return &S3{client: client, bucket: bucket, keyPattern: keyPattern}
}

// Load fetches and parses the bundle object for a locale.
func (l *S3) Load(ctx context.Context, locale string) (lingo.Bundle, error) {
	key := fmt.Sprintf(l.keyPattern, locale)

	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NoSuchKey
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: locale %q", ErrBundleNotFound, locale)
		}
		return nil, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxBundleSize))
	if err != nil {
		return nil, err
	}

	return decodeBundle(key, data)
}

var _ lingo.Loader = (*S3)(nil)
