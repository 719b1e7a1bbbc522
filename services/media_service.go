package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// deliveryTransformation is applied on delivery instead of on upload
const deliveryTransformation = "c_fill,g_auto,w_600,h_800/q_auto/f_auto"

// MediaService turns stored image sources into delivery URLs
type MediaService struct {
	cld *cloudinary.Cloudinary
}

// NewMediaService builds a Cloudinary backed service. With no cloud name the
// service passes sources through unchanged.
func NewMediaService(cloudName, apiKey, apiSecret string) (*MediaService, error) {
	if cloudName == "" {
		log.Println("⚠️ CLOUDINARY_CLOUD_NAME not set, serving image sources as stored")
		return &MediaService{}, nil
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return &MediaService{cld: cld}, nil
}

// ImageURL returns the delivery URL of an image. Full URLs are returned as
// is, anything else is treated as a Cloudinary public ID.
func (s *MediaService) ImageURL(source string) string {
	source = strings.TrimSpace(source)
	if source == "" || s == nil || s.cld == nil || isAbsoluteURL(source) {
		return source
	}

	img, err := s.cld.Image(source)
	if err != nil {
		log.Printf("⚠️ [media] bad public id %q: %v", source, err)
		return source
	}
	img.Transformation = deliveryTransformation

	url, err := img.String()
	if err != nil {
		log.Printf("⚠️ [media] cannot build url for %q: %v", source, err)
		return source
	}
	return url
}

// UploadImage uploads a local file and returns its public ID
func (s *MediaService) UploadImage(ctx context.Context, path, publicID, folder string) (string, error) {
	if s == nil || s.cld == nil {
		return "", fmt.Errorf("cloudinary is not configured")
	}

	unique := false
	overwrite := true
	result, err := s.cld.Upload.Upload(ctx, path, uploader.UploadParams{
		Folder:         folder,
		PublicID:       publicID,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("upload successful but no public id returned")
	}

	return result.PublicID, nil
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "/")
}
