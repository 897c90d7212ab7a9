package docgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// pdfContentType is the content type every published document is stored with.
const pdfContentType = "application/pdf"

// Upload retry policy. Retries reuse the same storage key; a failed upload
// never publishes under a different name.
const (
	uploadAttempts    = 3
	uploadBackoffBase = 250 * time.Millisecond
)

// Publisher uploads a finished PDF to durable storage and returns its
// externally reachable URL. Implementations must be safe for concurrent use;
// one Publisher is shared by every Service in a pool.
type Publisher interface {
	Publish(ctx context.Context, pdfPath string, docType DocumentType, id string) (url string, err error)
}

// StorageKey returns the deterministic object key for a document:
// "{plural}/{id}.pdf". Distinct (docType, id) pairs map to distinct keys,
// and the same pair always maps to the same key.
func StorageKey(docType DocumentType, id string) string {
	return docType.Plural() + "/" + id + ".pdf"
}

// PublisherConfig holds object-storage connection settings.
type PublisherConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	// PublicBase is the URL prefix joined with the storage key to form the
	// published URL. No read-back verification is performed against it.
	PublicBase string
}

// objectUploader abstracts the storage client so upload behavior is testable
// without a bucket.
type objectUploader interface {
	UploadFile(ctx context.Context, key, filePath, contentType string) error
}

// ObjectPublisher publishes PDFs to an S3-compatible bucket.
type ObjectPublisher struct {
	uploader   objectUploader
	publicBase string
}

// Compile-time interface check.
var _ Publisher = (*ObjectPublisher)(nil)

// NewObjectPublisher creates an ObjectPublisher backed by a minio client.
func NewObjectPublisher(cfg PublisherConfig) (*ObjectPublisher, error) {
	cl, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	return &ObjectPublisher{
		uploader:   &minioUploader{cl: cl, bucket: cfg.Bucket},
		publicBase: cfg.PublicBase,
	}, nil
}

// Publish uploads the PDF under StorageKey(docType, id) with bounded retry
// and returns the public URL. All failures wrap ErrUploadFailed.
func (p *ObjectPublisher) Publish(ctx context.Context, pdfPath string, docType DocumentType, id string) (string, error) {
	key := StorageKey(docType, id)

	var lastErr error
	for attempt := 0; attempt < uploadAttempts; attempt++ {
		if attempt > 0 {
			backoff := uploadBackoffBase << (attempt - 1)
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", ErrUploadFailed, ctx.Err())
			case <-time.After(backoff):
			}
		}

		if err := p.uploader.UploadFile(ctx, key, pdfPath, pdfContentType); err != nil {
			lastErr = err
			continue
		}
		return joinURL(p.publicBase, key), nil
	}

	return "", fmt.Errorf("%w: %s after %d attempts: %v", ErrUploadFailed, key, uploadAttempts, lastErr)
}

// joinURL joins the public base with the storage key. Pure string
// construction; the object's existence is never verified.
func joinURL(base, key string) string {
	return strings.TrimSuffix(base, "/") + "/" + key
}

// minioUploader implements objectUploader on a minio client.
type minioUploader struct {
	cl     *minio.Client
	bucket string
}

// Compile-time interface check.
var _ objectUploader = (*minioUploader)(nil)

// UploadFile uploads a local file under the given key and content type.
func (u *minioUploader) UploadFile(ctx context.Context, key, filePath, contentType string) error {
	_, err := u.cl.FPutObject(ctx, u.bucket, key, filePath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}
