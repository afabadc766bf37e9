package extract

import (
	"fmt"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/reader"

	"github.com/tsawler/interleave/model"
)

// pdfFile extracts a document from a PDF. Text comes out through
// tabula's paragraph-joining pipeline so that hard-wrapped lines read as
// continuous prose. Image extraction failures are non-fatal: a scanned
// or unusual PDF still yields its text.
func pdfFile(path, lang string) (model.Document, error) {
	text, _, err := tabula.Open(path).JoinParagraphs().Text()
	if err != nil {
		return model.Document{}, fmt.Errorf("extract: %w", err)
	}

	images, err := pdfImages(path)
	if err != nil {
		images = nil
	}

	return model.Document{
		Lang:     lang,
		FullText: text,
		Images:   images,
	}, nil
}

// pdfImages extracts page images in page order. An image's position is
// the midpoint of its page relative to the page count, and its page
// number is recorded so page-mode matching can use it.
func pdfImages(path string) ([]model.Image, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	defer r.Close()

	pageCount, err := r.PageCount()
	if err != nil || pageCount == 0 {
		return nil, err
	}

	var images []model.Image
	for i := 0; i < pageCount; i++ {
		page, err := r.GetPage(i)
		if err != nil {
			continue
		}
		pageImages, err := r.ExtractPageImages(page)
		if err != nil {
			continue
		}

		for _, pi := range pageImages {
			if pi.Width < minImageDim || pi.Height < minImageDim {
				continue
			}
			data, err := pi.ToPNG()
			if err != nil {
				data = nil // Keep the image as a placeholder
			}
			images = append(images, model.Image{
				Index:    len(images),
				Page:     i + 1,
				Position: (float64(i) + 0.5) / float64(pageCount),
				Data:     data,
				Width:    pi.Width,
				Height:   pi.Height,
			})
		}
	}

	return images, nil
}
