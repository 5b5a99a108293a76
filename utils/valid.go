// utils/validation.go
package utils

import (
	"errors"
	"mime/multipart"
)

// ValidateUpload checks the size and type of an uploaded image
func ValidateUpload(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return errors.New("file too large")
	}
	if err := ValidateFileType(file.Filename, "image"); err != nil {
		return err
	}
	return nil
}
