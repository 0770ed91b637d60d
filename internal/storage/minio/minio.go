package minio

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client wraps a MinIO bucket holding the uploaded artwork images and maps
// object names to the public URLs stored on artwork rows.
type Client struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewClient connects to the object store and ensures the bucket exists.
// publicURL overrides the URL prefix objects are served from (for a CDN or
// reverse proxy in front of the bucket); empty means the endpoint itself.
func NewClient(endpoint, accessKey, secretKey, bucket, publicURL string, useSSL bool) (*Client, error) {
	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	if publicURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + endpoint
	}

	c := &Client{
		client:  mc,
		bucket:  bucket,
		baseURL: strings.TrimRight(publicURL, "/") + "/" + bucket + "/",
	}

	if err := c.ensureBucketExists(context.Background()); err != nil {
		return nil, err
	}

	log.Printf("Object storage ready, bucket %q", bucket)
	return c, nil
}

func (c *Client) ensureBucketExists(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %s: %w", c.bucket, err)
	}
	if !exists {
		if err := c.client.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("creating bucket %s: %w", c.bucket, err)
		}
		log.Printf("Created bucket: %s", c.bucket)
	}
	return nil
}

// Upload stores one object and returns its public URL.
func (c *Client) Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := c.client.PutObject(ctx, c.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", objectName, err)
	}
	return c.baseURL + objectName, nil
}

// Remove deletes one object from the bucket.
func (c *Client) Remove(ctx context.Context, objectName string) error {
	if err := c.client.RemoveObject(ctx, c.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing %s: %w", objectName, err)
	}
	return nil
}

// ObjectName maps a public URL back to its storage key. URLs outside the
// bucket (sample data paths, external links) report false.
func (c *Client) ObjectName(publicURL string) (string, bool) {
	name := strings.TrimPrefix(publicURL, c.baseURL)
	if name == publicURL || name == "" {
		return "", false
	}
	return name, true
}
