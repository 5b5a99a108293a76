package services

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/HSouheill/barrim_storefront/models"
	"github.com/HSouheill/barrim_storefront/utils"
)

const (
	maxBannerWidth  = 1920
	maxBannerHeight = 1080
)

// NormalizeBannerImage validates an uploaded banner image and shrinks it to
// fit within 1920x1080. SVG files pass through unchanged.
func NormalizeBannerImage(filename string, data []byte) (*models.BannerImage, error) {
	filename = utils.CleanFilename(filename)
	if err := utils.ValidateFileType(filename, "image"); err != nil {
		return nil, &ValidationError{Fields: []string{"image"}}
	}
	if len(data) > utils.MaxFileSize {
		return nil, &ValidationError{Fields: []string{"image"}}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".svg" {
		return &models.BannerImage{Filename: filename, ContentType: "image/svg+xml", Data: data}, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, &ValidationError{Fields: []string{"image"}}
	}

	format, contentType := imaging.JPEG, "image/jpeg"
	switch ext {
	case ".png":
		format, contentType = imaging.PNG, "image/png"
	case ".gif":
		format, contentType = imaging.GIF, "image/gif"
	}

	if fits(img.Bounds()) && ext != ".jpg" && ext != ".jpeg" {
		return &models.BannerImage{Filename: filename, ContentType: contentType, Data: data}, nil
	}
	if !fits(img.Bounds()) {
		img = imaging.Fit(img, maxBannerWidth, maxBannerHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &models.BannerImage{Filename: filename, ContentType: contentType, Data: buf.Bytes()}, nil
}

func fits(b image.Rectangle) bool {
	return b.Dx() <= maxBannerWidth && b.Dy() <= maxBannerHeight
}
