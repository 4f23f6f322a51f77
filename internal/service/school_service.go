package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"

	"schooldir/internal/cache"
	apperrors "schooldir/internal/errors"
	"schooldir/internal/model"
	"schooldir/internal/repository"
	"schooldir/internal/storage"
)

// MaxImageSize is the inclusive upper bound on uploaded image bytes (5 MiB).
const MaxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ImageUpload is one uploaded file: declared content type, byte size, and an
// opener for its content.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// SchoolInput carries the submitted school fields. Image is nil when the form
// had no file part.
type SchoolInput struct {
	Name    string
	Address string
	City    string
	State   string
	Contact string
	EmailID string
	Image   *ImageUpload
}

// SchoolService runs the school intake pipeline.
type SchoolService interface {
	AddSchool(ctx context.Context, in SchoolInput) (uint, error)
}

type schoolService struct {
	schools repository.SchoolRepository
	store   storage.ImageStore
	cache   *cache.Client
}

// NewSchoolService creates a new school service.
func NewSchoolService(schools repository.SchoolRepository, store storage.ImageStore, cacheClient *cache.Client) SchoolService {
	return &schoolService{
		schools: schools,
		store:   store,
		cache:   cacheClient,
	}
}

// AddSchool validates the submission, persists the image, and inserts the
// row, in that order; each step is a hard gate and the first failure wins.
// Returns the new row's id.
func (s *schoolService) AddSchool(ctx context.Context, in SchoolInput) (uint, error) {
	if err := validateSchoolInput(in); err != nil {
		return 0, err
	}

	src, err := in.Image.Open()
	if err != nil {
		return 0, &apperrors.StorageError{Op: "open upload", Err: err}
	}
	defer src.Close()

	imageRef, err := s.store.Save(ctx, in.Image.Filename, in.Image.ContentType, src)
	if err != nil {
		return 0, err
	}

	school := &model.School{
		Name:    in.Name,
		Address: in.Address,
		City:    in.City,
		State:   in.State,
		Contact: in.Contact,
		EmailID: in.EmailID,
		Image:   imageRef,
	}

	if err := s.schools.Create(ctx, school); err != nil {
		// Compensate for the already-written image so the insert failure
		// leaves no orphan behind. Best effort only.
		if delErr := s.store.Delete(ctx, imageRef); delErr != nil {
			log.Printf("orphaned image %s not cleaned up: %v", imageRef, delErr)
		}
		return 0, fmt.Errorf("insert school: %w", err)
	}

	s.invalidateDirectoryCache(ctx)

	return school.ID, nil
}

func validateSchoolInput(in SchoolInput) error {
	// Field order matters: the first missing field names the error.
	fields := []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"address", in.Address},
		{"city", in.City},
		{"state", in.State},
		{"contact", in.Contact},
		{"email_id", in.EmailID},
	}
	for _, f := range fields {
		if f.value == "" {
			return apperrors.NewValidationError(f.name, capitalize(f.name)+" is required")
		}
	}

	if in.Image == nil {
		return apperrors.NewValidationError("image", "School image is required")
	}
	if !allowedImageTypes[in.Image.ContentType] {
		return apperrors.NewValidationError("image", "Only JPG, PNG, WEBP, and GIF images are allowed")
	}
	if !emailPattern.MatchString(in.EmailID) {
		return apperrors.NewValidationError("email_id", "Invalid email format")
	}
	if in.Image.Size > MaxImageSize {
		return apperrors.NewValidationError("image", "Image size must be less than 5MB")
	}

	return nil
}

// invalidateDirectoryCache drops every cached listing and the stats entry
// after a successful insert.
func (s *schoolService) invalidateDirectoryCache(ctx context.Context) {
	keys := []string{statsCacheKey}
	for field := range sortFields {
		keys = append(keys, schoolListCacheKey(field, "ASC"), schoolListCacheKey(field, "DESC"))
	}
	_ = s.cache.Delete(ctx, keys...)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
