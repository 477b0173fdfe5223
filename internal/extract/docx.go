package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const (
	docxDefaultDocumentPath = "word/document.xml"
	docxContentTypesPath    = "[Content_Types].xml"
	docxMainContentType     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
)

// textNodeRe matches <w:t>...</w:t> including variants with attributes
// such as xml:space="preserve". Matching text nodes directly keeps the
// extraction independent of paragraph and run attributes.
var textNodeRe = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

// overrideRes match the main-document Override entry in
// [Content_Types].xml in either attribute order.
var overrideRes = []*regexp.Regexp{
	regexp.MustCompile(`<Override[^>]+PartName="([^"]+)"[^>]+ContentType="` + regexp.QuoteMeta(docxMainContentType) + `"`),
	regexp.MustCompile(`<Override[^>]+ContentType="` + regexp.QuoteMeta(docxMainContentType) + `"[^>]+PartName="([^"]+)"`),
}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// extractDOCX extracts text from .docx bytes. A DOCX is a zip whose
// main document part holds the body as OOXML; the part path is resolved
// from [Content_Types].xml with word/document.xml as the fallback.
func extractDOCX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("extract DOCX: not a zip: %w", err)
	}

	docPath := docxMainDocumentPath(zr)
	docXML, err := readZipFile(zr, docPath)
	if err != nil {
		return "", fmt.Errorf("extract DOCX: %w", err)
	}

	matches := textNodeRe.FindAllSubmatch(docXML, -1)
	var b strings.Builder
	for i, m := range matches {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(entityReplacer.Replace(strings.TrimSpace(string(m[1]))))
	}
	return strings.TrimSpace(b.String()), nil
}

// docxMainDocumentPath resolves the main document part from
// [Content_Types].xml, or returns the conventional default.
func docxMainDocumentPath(zr *zip.Reader) string {
	types, err := readZipFile(zr, docxContentTypesPath)
	if err != nil {
		return docxDefaultDocumentPath
	}
	for _, re := range overrideRes {
		if m := re.FindSubmatch(types); len(m) > 1 {
			return strings.TrimPrefix(string(m[1]), "/")
		}
	}
	return docxDefaultDocumentPath
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s not found", name)
}
