package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/pageza/calendara/backend/config"
	"github.com/pageza/calendara/backend/internal/validation"
)

// StorageService stores uploaded avatars in the public-read S3 bucket.
type StorageService struct {
	s3Config *config.S3Config
}

func NewStorageService(s3Config *config.S3Config) *StorageService {
	return &StorageService{s3Config: s3Config}
}

var allowedAvatarExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// UploadAvatar uploads the image under avatars/ and returns its public
// URL. The object key is derived from the user id so re-uploads replace
// the previous avatar.
func (s *StorageService) UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, body io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedAvatarExts[ext]
	if !ok {
		return "", invalid(validation.Errors{
			{Field: "avatar", Message: "Avatar must be a JPEG, PNG or WebP image"},
		})
	}

	key := fmt.Sprintf("avatars/%s%s", userID, ext)
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", unexpected("failed to upload avatar", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[StorageService] stored avatar for %s at %s", userID, url)
	return url, nil
}
