// Package extract provides text extraction and language detection for
// uploaded documents.
package extract

// Extractor extracts plain text from uploaded document bytes.
type Extractor struct{}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractBytes extracts text from content based on the given extension
// (with leading dot, e.g. ".pdf"). The returned page count is nonzero
// only for paginated formats. Unknown extensions and plain text never
// fail: malformed encodings fall back to lossy UTF-8 decoding.
func (e *Extractor) ExtractBytes(content []byte, ext string) (text string, pages int, err error) {
	switch ext {
	case ".pdf":
		return extractPDF(content)
	case ".docx":
		text, err = extractDOCX(content)
		return text, 0, err
	case ".xlsx":
		text, err = extractExcel(content)
		return text, 0, err
	default:
		return extractPlain(content), 0, nil
	}
}
