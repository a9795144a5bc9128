// Package uploader pushes processed product images to Cloudflare R2 via
// the S3 API. Local disk remains the default backend; R2 kicks in only
// when credentials are configured.
package uploader

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/image/draw"
)

const maxDim = 1600

type R2 struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

type R2Config struct {
	AccountID string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

// NewR2 builds the S3 client against the account's R2 endpoint. Returns
// nil when credentials are missing so callers can fall back to local disk.
func NewR2(ctx context.Context, c R2Config) (*R2, error) {
	if c.AccountID == "" || c.AccessKey == "" || c.SecretKey == "" || c.Bucket == "" {
		return nil, nil
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", c.AccountID)
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})
	return &R2{client: client, bucket: c.Bucket, publicURL: c.PublicURL}, nil
}

// Upload decodes the image, scales it down to at most 1600px on the long
// edge, re-encodes as JPEG and puts it in the bucket. Returns the public
// URL of the stored object.
func (u *R2) Upload(ctx context.Context, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode failed: %w", err)
	}

	dst := resize(src)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, dst, &jpeg.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode failed: %w", err)
	}

	key := randomKey() + ".jpg"
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	return fmt.Sprintf("%s/%s", u.publicURL, key), nil
}

func resize(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}

	ratio := float64(w) / float64(h)
	var newW, newH int
	if w > h {
		newW = maxDim
		newH = int(float64(maxDim) / ratio)
	} else {
		newH = maxDim
		newW = int(float64(maxDim) * ratio)
	}

	tmp := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(tmp, tmp.Bounds(), src, bounds, draw.Over, nil)
	return tmp
}

func randomKey() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "img_fallback"
	}
	return hex.EncodeToString(b)
}
