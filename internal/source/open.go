package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Stdin names standard input as a source.
const Stdin = "-"

// Fetcher downloads remote objects.
type Fetcher interface {
	Fetch(ctx context.Context, bucket, key string) ([]byte, error)
}

// Remote creates a Fetcher on first use, so credentials are only needed for
// remote sources.
type Remote func(ctx context.Context) (Fetcher, error)

// ParseRemote splits "r2://bucket/key" or "s3://bucket/key".
func ParseRemote(ref string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(ref, "r2://") && !strings.HasPrefix(ref, "s3://") {
		return "", "", false
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return "", "", false
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", false
	}
	return u.Host, key, true
}

// Read returns the raw bytes named by ref: a path, "-" for stdin, or a
// remote object.
func Read(ctx context.Context, ref string, stdin io.Reader, remote Remote) ([]byte, error) {
	logger := logrus.WithField("source", ref)

	switch {
	case ref == Stdin:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil

	case strings.Contains(ref, "://"):
		bucket, key, ok := ParseRemote(ref)
		if !ok {
			return nil, fmt.Errorf("unsupported source %q (want r2://bucket/key or s3://bucket/key)", ref)
		}
		if remote == nil {
			return nil, fmt.Errorf("remote sources are not available")
		}
		fetcher, err := remote(ctx)
		if err != nil {
			return nil, err
		}
		logger.Debug("Fetching remote document")
		return fetcher.Fetch(ctx, bucket, key)

	default:
		data, err := os.ReadFile(ref)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", ref, err)
		}
		return data, nil
	}
}

// Load reads and decodes a document.
func Load(ctx context.Context, ref string, stdin io.Reader, remote Remote, binder ActionBinder) (*Document, error) {
	data, err := Read(ctx, ref, stdin, remote)
	if err != nil {
		return nil, err
	}

	doc, err := Decode(data, binder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}

	logrus.WithFields(logrus.Fields{
		"source":  ref,
		"title":   doc.Title,
		"entries": doc.Describe(),
	}).Info("Document loaded")
	return doc, nil
}
