/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

/* Package s3cache provides an implementation of httpcache.Cache that stores
 * and retrieves entries in an Amazon S3 bucket. It exists for deployments
 * where several hosts (for example a fleet of collectors) should share one
 * response cache instead of each warming its own.
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// Cache objects store and retrieve data using Amazon S3.
type Cache struct {
	// Config is the Amazon S3 configuration.
	Config aws.Config

	// Client is the s3 client the cache uses. Init() populates it from the
	// default config chain; callers can override it before use.
	Client *s3.Client

	// bucket is the S3 bucket holding cache entries.
	bucket string

	// prefix namespaces this cache's objects within the bucket.
	prefix string

	// gzip indicates whether entries are compressed in Set and decompressed
	// in Get. Compressed object keys carry a ".gz" suffix.
	gzip bool

	// ctx to use when issuing s3 requests
	ctx context.Context
}

// New returns a Cache backed by the given bucket. prefix may be empty, in
// which case "apicache" is used. Callers should invoke Init() on the
// returned Cache before use.
func New(ctx context.Context, bucket, prefix string, gzipEntries bool) *Cache {
	if prefix == "" {
		prefix = "apicache"
	}
	return &Cache{
		ctx:    ctx,
		bucket: bucket,
		prefix: prefix,
		gzip:   gzipEntries,
	}
}

// Init loads AWS configuration from the default sources (env vars, shared
// credentials) and verifies the bucket is reachable.
func (c *Cache) Init() error {
	var err error
	c.Config, err = awsconfig.LoadDefaultConfig(c.ctx)
	if err != nil {
		return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
	}
	c.Client = s3.NewFromConfig(c.Config)

	if _, err = c.Client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucket),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w",
			c.bucket, err)
	}

	return nil
}

func (c *Cache) Get(key string) ([]byte, bool) {
	objKey := c.objectKey(key)
	resp, err := c.Client.GetObject(c.ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		// no such key just indicates a cache miss
		var apiErr smithy.APIError
		if !(errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {
			log.Errorf("s3cache.get: failed to get s3://%v/%v: %v", c.bucket,
				objKey, err)
		}
		return nil, false
	}
	defer resp.Body.Close()

	rdr := io.ReadCloser(resp.Body)
	if c.gzip {
		rdr, err = gzip.NewReader(rdr)
		if err != nil {
			log.Errorf("s3cache.get: failed to open compressed s3://%v/%v: %v",
				c.bucket, objKey, err)
			return nil, false
		}
		defer rdr.Close()
	}

	data, err := io.ReadAll(rdr)
	if err != nil {
		log.Errorf("s3cache.get: failed to read s3://%v/%v: %v", c.bucket,
			objKey, err)
		return nil, false
	}

	return data, true
}

// Set stores the provided data in the cache under the given key.
func (c *Cache) Set(key string, data []byte) {
	objKey := c.objectKey(key)
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objKey),
		Body:   bytes.NewReader(data),
	}

	if c.gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		_, err := gw.Write(data)
		if closeErr := gw.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			log.Errorf("s3cache.set: failed to compress entry for s3://%v/%v: %v",
				c.bucket, objKey, err)
			return
		}
		input.Body = &buf
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := c.Client.PutObject(c.ctx, input); err != nil {
		log.Errorf("s3cache.set: put failed for s3://%v/%v: %v", c.bucket,
			objKey, err)
	}
}

func (c *Cache) Delete(key string) {
	objKey := c.objectKey(key)
	_, err := c.Client.DeleteObject(c.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		log.Errorf("s3cache.delete: delete failed for s3://%v/%v: %v", c.bucket,
			objKey, err)
	}
}

func (c *Cache) objectKey(key string) string {
	h := md5.New()
	io.WriteString(h, key)
	objKey := fmt.Sprintf("%v/%v", c.prefix, hex.EncodeToString(h.Sum(nil)))
	if c.gzip {
		objKey += ".gz"
	}
	return objKey
}
