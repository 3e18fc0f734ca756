package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ErrObjectTooLarge is returned by ReadObject when an object exceeds the size limit.
var ErrObjectTooLarge = errors.New("object exceeds size limit")

// NormalizePrefix turns a folder name into a key prefix ending in "/".
// An empty prefix stays empty.
func NormalizePrefix(prefix string) string {
	p := strings.Trim(prefix, "/")
	if p == "" {
		return ""
	}
	return p + "/"
}

// IsNotFound reports whether err is a missing bucket or object.
func IsNotFound(err error) bool {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return true
	}
	return false
}

// ReadObject downloads an object into memory. A maxBytes of zero or less means no limit.
func ReadObject(ctx context.Context, c Client, bucket, key string, maxBytes int64) ([]byte, error) {
	obj, err := c.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	var r io.Reader = obj
	if maxBytes > 0 {
		r = io.LimitReader(obj, maxBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrObjectTooLarge, key, maxBytes)
	}
	return data, nil
}
