package extract

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/interleave/model"
)

// Extraction errors.
var (
	// ErrUnsupportedFormat is returned for a file whose format is not
	// recognized as text, PDF, or EPUB.
	ErrUnsupportedFormat = errors.New("extract: unsupported file format")
)

// minImageDim is the smallest width or height, in pixels, for an image
// to be kept. Anything smaller is decoration (spacers, rules, bullets).
const minImageDim = 50

// File extracts a document from the given path, tagged with the given
// language. The format is detected from the file extension, falling back
// to content sniffing for unrecognized extensions.
func File(path, lang string) (model.Document, error) {
	format := Detect(path)
	if format == Unknown {
		var err error
		format, err = sniff(path)
		if err != nil {
			return model.Document{}, err
		}
	}

	switch format {
	case Text:
		return textFile(path, lang)
	case PDF:
		return pdfFile(path, lang)
	case EPUB:
		return epubFile(path, lang)
	default:
		return model.Document{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// sniff content-detects the format of the file at path. Files that look
// like neither PDF nor EPUB are treated as plain text.
func sniff(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, fmt.Errorf("extract: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Unknown, fmt.Errorf("extract: %w", err)
	}

	format, err := DetectFromReader(f, info.Size())
	if err != nil || format == Unknown {
		return Text, nil
	}
	return format, nil
}

// textFile reads a plain text file as a document with no images.
func textFile(path, lang string) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("extract: %w", err)
	}
	return model.Document{
		Lang:     lang,
		FullText: strings.ReplaceAll(string(data), "\r\n", "\n"),
	}, nil
}
