package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// Photos longer than this on either edge get scaled down before upload.
const maxPhotoEdge = 1600

const webpQuality = 85

var ErrStorageDisabled = errors.New("photo storage is not configured")

type S3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

// PhotoStore uploads before/after job photos to S3, re-encoded as webp.
// A nil *PhotoStore rejects uploads with ErrStorageDisabled.
type PhotoStore struct {
	client *s3.Client
	bucket string
}

func New(cfg S3Config) *PhotoStore {
	if cfg.Bucket == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	})

	return &PhotoStore{client: client, bucket: cfg.Bucket}
}

// Upload normalizes the image and stores it under a per-booking prefix.
// Returns the object key.
func (ps *PhotoStore) Upload(ctx context.Context, bookingID uint, kind string, r io.Reader) (string, error) {
	if ps == nil {
		return "", ErrStorageDisabled
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	img = shrink(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode photo: %w", err)
	}

	key := fmt.Sprintf("bookings/%d/%s-%s.webp", bookingID, kind, uuid.NewString())

	_, err = ps.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ps.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}

	return key, nil
}

func shrink(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxPhotoEdge && h <= maxPhotoEdge {
		return img
	}

	scale := float64(maxPhotoEdge) / float64(w)
	if h > w {
		scale = float64(maxPhotoEdge) / float64(h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
