package security

import (
	"mime"
	"net/http"
)

var sensitiveHeaders = []string{
	"Authorization",
	"Cookie",
	"Set-Cookie",
	"X-CSRF-Token",
}

// SanitizeHeaders masks credentials so headers can be logged.
func SanitizeHeaders(headers http.Header) http.Header {
	for _, header := range sensitiveHeaders {
		if headers.Get(header) != "" {
			headers.Set(header, "[HIDDEN]")
		}
	}
	return headers
}

// ValidateContentType reports whether a request body has a content type the
// storefront accepts. Parameters such as charset or boundary are ignored.
func ValidateContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	validTypes := map[string]bool{
		"application/json":                  true,
		"application/x-www-form-urlencoded": true,
		"multipart/form-data":               true,
	}
	return validTypes[mediaType]
}
