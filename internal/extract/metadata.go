package extract

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hyperjump/kotae/internal/models"
)

var wordRe = regexp.MustCompile(`\w+`)

// Metadata builds document metadata from the filename, extracted text,
// and page count.
func Metadata(filename, text string, pages int) models.DocumentMetadata {
	if filename == "" {
		filename = "untitled"
	}
	fileType := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if fileType == "" {
		fileType = "unknown"
	}
	return models.DocumentMetadata{
		Filename:  filename,
		FileType:  fileType,
		Pages:     pages,
		WordCount: len(wordRe.FindAllString(text, -1)),
		Language:  DetectLanguage(text),
	}
}
