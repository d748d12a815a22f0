package soundscape

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strings"

	"focusdeck/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// objectPrefix is where soundscape audio lives inside the bucket.
const objectPrefix = "soundscapes/"

// audioExtensions maps permitted file extensions to their MIME type.
var audioExtensions = map[string]string{
	".mp3": "audio/mpeg",
	".ogg": "audio/ogg",
	".m4a": "audio/mp4",
}

// validName guards against path traversal in the name route parameter.
var validName = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Soundscape describes one available ambient audio loop.
type Soundscape struct {
	Name        string `json:"name"`
	File        string `json:"file"`
	SizeBytes   int64  `json:"sizeBytes"`
	ContentType string `json:"contentType"`
}

// Service handles soundscape listing and streaming.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new soundscape service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{client: client, bucket: bucket, logger: logger}
}

// List returns the available soundscapes, sorted by name.
func (s *Service) List(ctx context.Context) ([]Soundscape, error) {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	var scapes []Soundscape
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    objectPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}
		file := path.Base(obj.Key)
		contentType, ok := audioExtensions[strings.ToLower(path.Ext(file))]
		if !ok {
			continue
		}
		scapes = append(scapes, Soundscape{
			Name:        strings.TrimSuffix(file, path.Ext(file)),
			File:        file,
			SizeBytes:   obj.Size,
			ContentType: contentType,
		})
	}

	sort.Slice(scapes, func(i, j int) bool { return scapes[i].Name < scapes[j].Name })
	return scapes, nil
}

// Upload stores one audio file under the soundscape prefix. Used by the seed
// command; the HTTP surface is read-only.
func (s *Service) Upload(ctx context.Context, file string, reader io.Reader, size int64) error {
	contentType, ok := audioExtensions[strings.ToLower(path.Ext(file))]
	if !ok || !validName.MatchString(file) {
		return fmt.Errorf("unsupported soundscape file %q", file)
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectPrefix+file, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", file, err)
	}
	return nil
}

// Stream opens one soundscape file for streaming. The caller must close the
// reader.
func (s *Service) Stream(ctx context.Context, file string) (io.ReadCloser, *Soundscape, error) {
	contentType, ok := audioExtensions[strings.ToLower(path.Ext(file))]
	if !ok || !validName.MatchString(file) {
		return nil, nil, fmt.Errorf("unknown soundscape %q", file)
	}

	key := objectPrefix + file
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", key, err)
	}

	reader, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("get %s: %w", key, err)
	}

	return reader, &Soundscape{
		Name:        strings.TrimSuffix(file, path.Ext(file)),
		File:        file,
		SizeBytes:   info.Size,
		ContentType: contentType,
	}, nil
}
