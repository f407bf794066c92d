package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxImageSize    = 5 << 20
	MaxDocumentSize = 10 << 20
)

var (
	ErrFileTooLarge       = errors.New("file too large")
	ErrUnsupportedType    = errors.New("unsupported file type")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

var documentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Kind        Kind
	Body        io.Reader
}

// Validate runs the type/size guards before a single byte leaves the
// gateway: images up to 5MB with an image MIME type, documents up to 10MB
// limited to PDF/DOC/DOCX.
func Validate(in UploadInput) error {
	ct := strings.ToLower(strings.TrimSpace(in.ContentType))

	switch in.Kind {
	case KindImage:
		if !strings.HasPrefix(ct, "image/") {
			return fmt.Errorf("%w: %s", ErrUnsupportedType, ct)
		}
		if in.Size <= 0 || in.Size > MaxImageSize {
			return fmt.Errorf("%w: size=%d limit=%d", ErrFileTooLarge, in.Size, MaxImageSize)
		}
	case KindDocument:
		if !documentTypes[ct] {
			return fmt.Errorf("%w: %s", ErrUnsupportedType, ct)
		}
		if in.Size <= 0 || in.Size > MaxDocumentSize {
			return fmt.Errorf("%w: size=%d limit=%d", ErrFileTooLarge, in.Size, MaxDocumentSize)
		}
	default:
		return fmt.Errorf("%w: kind=%q", ErrUnsupportedType, in.Kind)
	}
	return nil
}

// Client uploads validated files to the external file store and returns the
// durable download URL written back to the core API.
type Client interface {
	Upload(ctx context.Context, in UploadInput) (string, error)
}

type httpStorageClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpStorageClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type uploadResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

func (c *httpStorageClient) Upload(ctx context.Context, in UploadInput) (string, error) {
	if c == nil || c.client == nil {
		return "", ErrStorageUnavailable
	}
	if err := Validate(in); err != nil {
		return "", err
	}

	objectName := uuid.NewString() + path.Ext(in.FileName)
	endpoint := fmt.Sprintf("%s/objects/%s/%s", c.baseURL, in.Kind, objectName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, in.Body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", in.ContentType)
	req.ContentLength = in.Size

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if c.logger != nil {
			c.logger.Printf("[Storage] upload failed object=%s status=%d body=%q", objectName, resp.StatusCode, strings.TrimSpace(string(rb)))
		}
		return "", fmt.Errorf("storage upload failed: status=%d", resp.StatusCode)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	url := strings.TrimSpace(out.DownloadURL)
	if url == "" {
		return "", errors.New("storage returned empty download url")
	}
	return url, nil
}

var _ Client = (*httpStorageClient)(nil)
