package cloudinary

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const uploadTimeout = 60 * time.Second

// Client wraps the Cloudinary SDK behind the small upload surface the prize
// pipeline needs. Constructed once at startup and passed in explicitly so
// tests can substitute a double.
type Client struct {
	cld *cloudinary.Cloudinary
}

// NewClient creates a Cloudinary client from account credentials
func NewClient(cloudName, apiKey, apiSecret string) (*Client, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config error: %w", err)
	}
	return &Client{cld: cld}, nil
}

// Upload stores the file under the given key (folder-qualified public ID)
// and returns its publicly fetchable URL.
func (c *Client) Upload(ctx context.Context, key string, file io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: key,
	})
	if err != nil {
		return "", fmt.Errorf("upload error: %w", err)
	}

	return resp.SecureURL, nil
}
