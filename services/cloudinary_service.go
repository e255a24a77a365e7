package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService handles product media uploads for sellers.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

var cloudinaryService *CloudinaryService

// InitCloudinary wires the shared Cloudinary client used by product uploads.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinaryService = &CloudinaryService{cld: cld}
	return nil
}

// GetCloudinaryService returns the initialized service, nil when media
// uploads are not configured.
func GetCloudinaryService() *CloudinaryService {
	return cloudinaryService
}

// UploadProductImage uploads one image and returns its secure URL. Images
// land under products/<sellerID>/ so a seller's media stays grouped.
func (s *CloudinaryService) UploadProductImage(ctx context.Context, file multipart.File, sellerID string) (string, error) {
	unique := true
	overwrite := false

	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         "products/" + sellerID,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, nil
}

// UploadProductImages uploads the gallery for one product in order.
func (s *CloudinaryService) UploadProductImages(ctx context.Context, files []*multipart.FileHeader, sellerID string) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
		}
		url, err := s.UploadProductImage(ctx, file, sellerID)
		file.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
