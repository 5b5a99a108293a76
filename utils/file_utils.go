package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Maximum upload size (10MB)
const MaxFileSize = 10 * 1024 * 1024

var (
	allowedImageExts = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".svg":  true,
	}
	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
)

// CleanFilename removes any potentially dangerous characters from the filename
func CleanFilename(filename string) string {
	filename = filepath.Base(filename)
	return unsafeFilenameChars.ReplaceAllString(filename, "")
}

// ValidateFileType checks if the file extension is allowed for the given media type
func ValidateFileType(filename, mediaType string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	switch mediaType {
	case "image":
		if !allowedImageExts[ext] {
			return fmt.Errorf("unsupported image format. Allowed formats: jpg, jpeg, png, gif, svg")
		}
	default:
		return fmt.Errorf("invalid media type. Must be 'image'")
	}
	return nil
}
