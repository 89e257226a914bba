package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"go.uber.org/zap"
)

// Extraction methods reported on Document
const (
	MethodPDF = "pdf"
	MethodRaw = "raw"
)

// Document is the text extracted from an uploaded file
type Document struct {
	Text      string
	Method    string
	MimeType  string
	PageCount *int
}

// TextExtractor turns uploaded bytes into document text
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (*Document, error)
}

// FileTextExtractor reads PDF text and falls back to a UTF-8 decode of the raw bytes
type FileTextExtractor struct {
	logger *zap.Logger
}

// NewFileTextExtractor creates a new extractor
func NewFileTextExtractor(logger *zap.Logger) *FileTextExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileTextExtractor{logger: logger}
}

// Extract implements TextExtractor
func (e *FileTextExtractor) Extract(_ context.Context, data []byte) (*Document, error) {
	text, pages, err := readPDFText(data)
	if err == nil {
		if count, err := api.PageCount(bytes.NewReader(data), nil); err == nil {
			pages = count
		} else {
			e.logger.Debug("failed to read PDF page count", zap.Error(err))
		}
		return &Document{
			Text:      text,
			Method:    MethodPDF,
			MimeType:  "application/pdf",
			PageCount: &pages,
		}, nil
	}
	e.logger.Debug("PDF extraction failed, decoding raw bytes", zap.Error(err))

	if !utf8.Valid(data) {
		return nil, ErrUnreadableDocument
	}
	return &Document{
		Text:     string(data),
		Method:   MethodRaw,
		MimeType: detectTextMimeType(data),
	}, nil
}

// readPDFText concatenates the plain text of every page; pages that fail contribute nothing
func readPDFText(data []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}

	var b strings.Builder
	pages = reader.NumPage()
	for i := 1; i <= pages; i++ {
		b.WriteString(pageText(reader.Page(i)))
	}
	return b.String(), pages, nil
}

func pageText(page pdf.Page) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	if page.V.IsNull() {
		return ""
	}
	fonts := make(map[string]*pdf.Font)
	for _, name := range page.Fonts() {
		font := page.Font(name)
		fonts[name] = &font
	}
	content, err := page.GetPlainText(fonts)
	if err != nil {
		return ""
	}
	return content
}

func detectTextMimeType(data []byte) string {
	mime := http.DetectContentType(data)
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	if mime == "application/octet-stream" {
		return "text/plain"
	}
	return mime
}
