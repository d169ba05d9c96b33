// Package validate holds input sanitization helpers for user ids,
// filenames and MIME types. User ids and filenames are restricted to
// alphabets that exclude the media key delimiter "/", so key segment
// boundaries cannot be spoofed through crafted input.
package validate

import (
	"mime"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxUserIDLength   = 100
	maxFileNameLength = 255
)

var userIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Characters and sequences that are never allowed in a filename.
var unsafeFileNamePatterns = []string{
	"..", "/", "\\", ":", "*", "?", `"`, "<", ">", "|",
}

// UserID reports whether id is a well-formed user identifier.
func UserID(id string) bool {
	if id == "" || utf8.RuneCountInString(id) > maxUserIDLength {
		return false
	}
	return userIDPattern.MatchString(id)
}

// FileName reports whether name is safe to use as an object key
// segment. Path separators and traversal sequences are rejected.
// The length limit counts characters, not bytes, so multi-byte names
// are not cut short.
func FileName(name string) bool {
	if name == "" || utf8.RuneCountInString(name) > maxFileNameLength {
		return false
	}
	for _, p := range unsafeFileNamePatterns {
		if strings.Contains(name, p) {
			return false
		}
	}
	return true
}

var fileNameSanitizer = regexp.MustCompile(`[^\w\-.]`)

// SanitizeFileName strips directory components and replaces unsafe
// characters with underscores. The result always passes FileName
// unless it is empty.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	name = fileNameSanitizer.ReplaceAllString(name, "_")
	name = strings.ReplaceAll(name, "..", "_")
	if len(name) > maxFileNameLength {
		ext := path.Ext(name)
		// An extension longer than the whole limit cannot be kept.
		if len(ext) >= maxFileNameLength {
			ext = ""
		}
		name = strings.TrimRight(name[:maxFileNameLength-len(ext)], ".") + ext
	}
	return name
}

var supportedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

var supportedDocumentTypes = map[string]bool{
	"application/pdf":    true,
	"text/plain":         true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// IsSupportedImageType reports whether mimeType is a supported image
// format.
func IsSupportedImageType(mimeType string) bool {
	return supportedImageTypes[mimeType]
}

// IsSupportedDocumentType reports whether mimeType is a supported
// document format.
func IsSupportedDocumentType(mimeType string) bool {
	return supportedDocumentTypes[mimeType]
}

// FileExtension guesses a file extension for a MIME type, including
// the leading dot. Returns "" when the type is unknown.
func FileExtension(mimeType string) string {
	exts, err := mime.ExtensionsByType(mimeType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}
