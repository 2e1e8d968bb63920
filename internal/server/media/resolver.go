// Package media turns destination media references into URLs a browser can
// load. Plain http(s) URLs are returned as is; s3://bucket/key references are
// presigned against the configured object store.
package media

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

var ErrBadReference = errors.New("bad media reference")

const schemeS3 = "s3"

// Config describes the object store holding s3:// media.
type Config struct {
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	TTL          time.Duration
}

// Resolver is safe for concurrent use. The S3 presign client is created on
// first use so that catalogs without s3:// media never touch AWS config.
type Resolver struct {
	cfg Config

	mu      sync.Mutex
	presign *s3.PresignClient
}

func NewResolver(cfg Config) *Resolver {
	if cfg.TTL <= 0 {
		cfg.TTL = 15 * time.Minute
	}
	return &Resolver{cfg: cfg}
}

// Resolve returns a loadable URL for ref. An empty ref resolves to "".
func (r *Resolver) Resolve(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadReference, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return ref, nil
	case schemeS3:
		bucket := u.Host
		key := strings.TrimPrefix(u.Path, "/")
		if bucket == "" || key == "" {
			return "", fmt.Errorf("%w: %q needs bucket and key", ErrBadReference, ref)
		}
		return r.presignGet(ctx, bucket, key)
	default:
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrBadReference, u.Scheme)
	}
}

func (r *Resolver) presignGet(ctx context.Context, bucket, key string) (string, error) {
	pc, err := r.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(r.cfg.TTL))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (r *Resolver) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.presign != nil {
		return r.presign, nil
	}

	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(r.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			r.cfg.AccessKey,
			r.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if r.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(r.cfg.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	r.presign = newS3PresignClient(client)
	return r.presign, nil
}
