package images

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	lru "github.com/hashicorp/golang-lru"
)

const (
	defaultPresignTTL = time.Hour
	defaultCacheSize  = 256
	imageExt          = ".png"
)

type Config struct {
	Key        string `toml:"key"`
	Secret     string `toml:"secret"`
	Region     string `toml:"region"`
	Bucket     string `toml:"bucket"`
	Endpoint   string `toml:"endpoint"`
	CardRoot   string `toml:"card_root"`
	BaseURL    string `toml:"base_url"`
	PresignTTL int    `toml:"presign_ttl"`
	CacheSize  int    `toml:"cache_size"`
}

func (c Config) presigned() bool {
	return c.Key != "" && c.Secret != "" && c.Bucket != ""
}

// Resolver turns an album image key such as "07" or "07_blurred" into a URL.
type Resolver interface {
	URL(ctx context.Context, key string) (string, error)
}

// New returns a presigning resolver when Spaces credentials are set, a static one otherwise.
func New(ctx context.Context, cfg Config) (Resolver, error) {
	if !cfg.presigned() {
		return NewStaticResolver(cfg.BaseURL, cfg.CardRoot), nil
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.digitaloceanspaces.com", cfg.Region)
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, "")),
		config.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load spaces config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	ttl := time.Duration(cfg.PresignTTL) * time.Second
	return NewPresignResolver(s3.NewPresignClient(client), cfg.Bucket, cfg.CardRoot, ttl, cfg.CacheSize)
}

func objectKey(root, key string) string {
	root = strings.Trim(root, "/")
	if root == "" {
		return key + imageExt
	}
	return root + "/" + key + imageExt
}

type StaticResolver struct {
	baseURL string
	root    string
}

func NewStaticResolver(baseURL, root string) *StaticResolver {
	return &StaticResolver{baseURL: strings.TrimRight(baseURL, "/"), root: root}
}

func (r *StaticResolver) URL(_ context.Context, key string) (string, error) {
	return r.baseURL + "/" + objectKey(r.root, key), nil
}

// Presigner is the part of *s3.PresignClient the resolver needs.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type presignedURL struct {
	url       string
	refreshAt time.Time
}

type PresignResolver struct {
	presigner Presigner
	bucket    string
	root      string
	ttl       time.Duration
	cache     *lru.Cache
	now       func() time.Time
}

func NewPresignResolver(presigner Presigner, bucket, root string, ttl time.Duration, cacheSize int) (*PresignResolver, error) {
	if ttl <= 0 {
		ttl = defaultPresignTTL
	}
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create url cache: %w", err)
	}
	return &PresignResolver{
		presigner: presigner,
		bucket:    bucket,
		root:      root,
		ttl:       ttl,
		cache:     cache,
		now:       time.Now,
	}, nil
}

// URL serves cached URLs until 80% of their lifetime has passed.
func (r *PresignResolver) URL(ctx context.Context, key string) (string, error) {
	objKey := objectKey(r.root, key)
	now := r.now()

	if v, ok := r.cache.Get(objKey); ok {
		if cached := v.(presignedURL); now.Before(cached.refreshAt) {
			return cached.url, nil
		}
	}

	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(objKey),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		slog.Error("Failed to presign card image",
			slog.String("type", "sys"),
			slog.String("key", objKey),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("failed to presign %s: %w", objKey, err)
	}

	r.cache.Add(objKey, presignedURL{url: req.URL, refreshAt: now.Add(r.ttl * 4 / 5)})
	return req.URL, nil
}
