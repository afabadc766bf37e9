package extract

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported source file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Text indicates a plain text file.
	Text
	// PDF indicates a PDF document.
	PDF
	// EPUB indicates an EPUB archive.
	EPUB
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case PDF:
		return "PDF"
	case EPUB:
		return "EPUB"
	default:
		return "Unknown"
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".epub":
		return EPUB
	case ".txt", ".text", ".md":
		return Text
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format. It is more
// reliable than extension-based detection but cannot distinguish an EPUB
// from other ZIP archives; use DetectFromReader for that.
func DetectFromMagic(data []byte) Format {
	if len(data) >= 4 && data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}
	return Unknown
}

// DetectFromReader inspects content to determine format. ZIP archives
// are opened and checked for the EPUB mimetype entry.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 4)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if f := DetectFromMagic(magic); f != Unknown {
		return f, nil
	}

	if len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		return detectZIPFormat(r, size)
	}

	return Unknown, nil
}

// detectZIPFormat checks a ZIP archive for the EPUB mimetype entry or a
// container.xml, either of which marks it as an EPUB.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if f.Name == "META-INF/container.xml" {
			return EPUB, nil
		}
		if f.Name == "mimetype" {
			rc, err := f.Open()
			if err != nil {
				continue
			}
			data, _ := io.ReadAll(io.LimitReader(rc, 256))
			rc.Close()
			if bytes.Contains(data, []byte("application/epub+zip")) {
				return EPUB, nil
			}
		}
	}

	return Unknown, nil
}
