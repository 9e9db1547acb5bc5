package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/calendara/backend/internal/models"
	"github.com/pageza/calendara/backend/internal/types"
	"github.com/pageza/calendara/backend/internal/validation"
)

// ProfileService handles the owner's profile reads and writes plus the
// public-by-username lookup used on booking pages. The caller's identity is
// always an explicit parameter.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile reads the caller's own profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Profile not found")
		}
		return nil, unexpected("failed to load profile", err)
	}
	return &profile, nil
}

// UpdateProfile is a full replace of the owner-editable fields, revalidated
// against the profile schema before the write.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.Profile, error) {
	if errs := validation.Profile(req); len(errs) > 0 {
		return nil, invalid(errs)
	}

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Username = req.Username
	profile.FullName = req.FullName
	profile.Timezone = req.Timezone
	profile.Locale = req.Locale

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("Username already taken")
		}
		return nil, unexpected("failed to update profile", err)
	}
	return profile, nil
}

// SetAvatarURL records an uploaded avatar's public URL on the profile.
func (s *ProfileService) SetAvatarURL(ctx context.Context, userID uuid.UUID, url string) (*models.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.AvatarURL = url
	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, unexpected("failed to update avatar", err)
	}
	return profile, nil
}

// GetPublicProfile resolves a profile by username for the public booking
// page. Only the public field subset leaves this call.
func (s *ProfileService) GetPublicProfile(ctx context.Context, username string) (*models.PublicProfile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Page not found")
		}
		return nil, unexpected("failed to load profile", err)
	}
	public := profile.Public()
	return &public, nil
}
