// Package osstorage cienki klient object storage dla biblioteki mediów.
package osstorage

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"ledkino.pl/configs"
)

// ObjectStorage zapisuje i usuwa obiekty; interfejs istnieje po to,
// żeby serwis mediów dał się testować bez prawdziwego bucketa.
type ObjectStorage interface {
	Put(key string, r io.Reader, contentType string) error
	Delete(key string) error
	PublicURL(key string) string
}

// Client implementacja ObjectStorage na aliyun-oss-go-sdk.
type Client struct {
	bucket        *oss.Bucket
	publicBaseURL string
}

// NewClient łączy się z bucketem wskazanym w konfiguracji.
func NewClient(cfg configs.OSSConfig) (*Client, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("klient OSS: %w", err)
	}
	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("bucket %s: %w", cfg.Bucket, err)
	}
	base := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", cfg.Bucket, strings.TrimPrefix(cfg.Endpoint, "https://"))
	}
	return &Client{bucket: bucket, publicBaseURL: base}, nil
}

// Put zapisuje obiekt pod kluczem z podanym Content-Type.
func (c *Client) Put(key string, r io.Reader, contentType string) error {
	return c.bucket.PutObject(key, r, oss.ContentType(contentType))
}

// Delete usuwa obiekt; brak obiektu nie jest błędem po stronie OSS.
func (c *Client) Delete(key string) error {
	return c.bucket.DeleteObject(key)
}

// PublicURL buduje publiczny adres obiektu.
func (c *Client) PublicURL(key string) string {
	return c.publicBaseURL + "/" + key
}

// GenerateKey tworzy unikalną nazwę obiektu zachowując rozszerzenie
// oryginalnego pliku.
func GenerateKey(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return "media/" + uuid.NewString() + ext
}
