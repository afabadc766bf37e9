package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"image"
	"io"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/interleave/model"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// EPUB-related errors.
var (
	ErrInvalidArchive = errors.New("extract: invalid or corrupted EPUB archive")
	ErrNoContainer    = errors.New("extract: missing META-INF/container.xml")
	ErrInvalidOPF     = errors.New("extract: invalid package document")
	ErrEmptySpine     = errors.New("extract: no content in spine")
)

// epubFile extracts a document from an EPUB archive on disk.
func epubFile(filePath, lang string) (model.Document, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return model.Document{}, ErrInvalidArchive
	}
	defer zr.Close()

	return epubDocument(&zr.Reader, lang)
}

// epubDocument walks the spine in reading order, extracting text and
// images from each chapter. An image's position is the midpoint of its
// chapter relative to the whole book.
func epubDocument(zr *zip.Reader, lang string) (model.Document, error) {
	opfPath, err := parseContainer(zr)
	if err != nil {
		return model.Document{}, err
	}

	chapters, err := parseOPF(zr, opfPath)
	if err != nil {
		return model.Document{}, err
	}

	doc := model.Document{Lang: lang}
	var parts []string
	seen := make(map[string]bool)

	for ci, href := range chapters {
		content, err := readZipFile(zr, href)
		if err != nil {
			continue // Skip missing files but keep going
		}

		node, err := html.Parse(bytes.NewReader(content))
		if err != nil {
			continue
		}

		var c chapterContent
		walkChapter(node, &c)

		if text := joinLines(c.text.String()); text != "" {
			parts = append(parts, text)
		}

		position := (float64(ci) + 0.5) / float64(len(chapters))
		chapterDir := path.Dir(href)

		for _, ref := range c.images {
			src := resolveHref(chapterDir, ref.src)
			if src == "" || seen[src] {
				continue
			}
			seen[src] = true

			data, err := readZipFile(zr, src)
			if err != nil {
				continue
			}

			img := model.Image{
				Index:    len(doc.Images),
				Position: position,
				Caption:  ref.caption,
				Data:     data,
			}
			if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
				if cfg.Width < minImageDim || cfg.Height < minImageDim {
					continue // Decorative: spacers, rules, bullets
				}
				img.Width = cfg.Width
				img.Height = cfg.Height
			}
			doc.Images = append(doc.Images, img)
		}
	}

	doc.FullText = strings.Join(parts, "\n\n")
	if doc.FullText != "" {
		doc.FullText += "\n"
	}
	return doc, nil
}

// ============================================================================
// Package structure (container.xml and OPF)
// ============================================================================

type containerXML struct {
	XMLName   xml.Name `xml:"container"`
	Rootfiles struct {
		Rootfile []struct {
			FullPath  string `xml:"full-path,attr"`
			MediaType string `xml:"media-type,attr"`
		} `xml:"rootfile"`
	} `xml:"rootfiles"`
}

// parseContainer parses META-INF/container.xml and returns the OPF path.
func parseContainer(zr *zip.Reader) (string, error) {
	data, err := readZipFile(zr, "META-INF/container.xml")
	if err != nil {
		return "", ErrNoContainer
	}

	var container containerXML
	if err := xml.Unmarshal(data, &container); err != nil {
		return "", ErrNoContainer
	}

	for _, rf := range container.Rootfiles.Rootfile {
		if rf.MediaType == "application/oebps-package+xml" || rf.MediaType == "" {
			if rf.FullPath != "" {
				return rf.FullPath, nil
			}
		}
	}
	if len(container.Rootfiles.Rootfile) > 0 {
		return container.Rootfiles.Rootfile[0].FullPath, nil
	}
	return "", ErrNoContainer
}

type opfPackage struct {
	XMLName  xml.Name `xml:"package"`
	Manifest struct {
		Items []struct {
			ID        string `xml:"id,attr"`
			Href      string `xml:"href,attr"`
			MediaType string `xml:"media-type,attr"`
		} `xml:"item"`
	} `xml:"manifest"`
	Spine struct {
		ItemRefs []struct {
			IDRef  string `xml:"idref,attr"`
			Linear string `xml:"linear,attr"`
		} `xml:"itemref"`
	} `xml:"spine"`
}

// parseOPF parses the package document and returns the spine's chapter
// paths, resolved against the OPF directory, in reading order.
func parseOPF(zr *zip.Reader, opfPath string) ([]string, error) {
	data, err := readZipFile(zr, opfPath)
	if err != nil {
		return nil, ErrInvalidOPF
	}

	var opf opfPackage
	if err := xml.Unmarshal(data, &opf); err != nil {
		return nil, ErrInvalidOPF
	}

	manifest := make(map[string]string, len(opf.Manifest.Items))
	for _, item := range opf.Manifest.Items {
		manifest[item.ID] = item.Href
	}

	baseDir := path.Dir(opfPath)
	if baseDir == "." {
		baseDir = ""
	}

	var chapters []string
	for _, ref := range opf.Spine.ItemRefs {
		if ref.Linear == "no" {
			continue
		}
		href, ok := manifest[ref.IDRef]
		if !ok {
			continue
		}
		chapters = append(chapters, resolveHref(baseDir, href))
	}

	if len(chapters) == 0 {
		return nil, ErrEmptySpine
	}
	return chapters, nil
}

// resolveHref resolves a relative href against a base directory inside
// the archive.
func resolveHref(baseDir, href string) string {
	if decoded, err := url.QueryUnescape(href); err == nil {
		href = decoded
	}
	if i := strings.IndexAny(href, "#?"); i >= 0 {
		href = href[:i]
	}
	if href == "" || baseDir == "" || baseDir == "." {
		return href
	}
	return path.Join(baseDir, href)
}

// readZipFile reads a named file from the archive.
func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, errors.New("extract: file not found in archive")
}

// ============================================================================
// Chapter content
// ============================================================================

type imageRef struct {
	src     string
	caption string
}

type chapterContent struct {
	text   strings.Builder
	images []imageRef
}

// walkChapter traverses the chapter's HTML tree, accumulating visible
// text line by line and recording image references with captions.
func walkChapter(n *html.Node, c *chapterContent) {
	if n.Type == html.TextNode {
		if fields := strings.Fields(n.Data); len(fields) > 0 {
			c.text.WriteString(strings.Join(fields, " "))
			c.text.WriteString(" ")
		}
		return
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "head", "nav":
			return
		case "figure":
			c.walkFigure(n)
			return
		case "img":
			c.images = append(c.images, imageRef{
				src:     attrValue(n, "src"),
				caption: attrValue(n, "alt"),
			})
			return
		case "br":
			c.text.WriteString("\n")
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walkChapter(child, c)
	}

	if n.Type == html.ElementNode && isBlockElement(n.Data) {
		c.text.WriteString("\n")
	}
}

// walkFigure records a figure's images, preferring the figcaption text
// over each image's alt attribute. Figure text does not join the running
// chapter text; it belongs to the image.
func (c *chapterContent) walkFigure(n *html.Node) {
	caption := strings.TrimSpace(textContent(findElement(n, "figcaption")))
	for _, img := range findElements(n, "img") {
		ref := imageRef{src: attrValue(img, "src"), caption: caption}
		if ref.caption == "" {
			ref.caption = attrValue(img, "alt")
		}
		c.images = append(c.images, ref)
	}
}

func isBlockElement(tag string) bool {
	switch tag {
	case "p", "h1", "h2", "h3", "h4", "h5", "h6", "div", "li",
		"blockquote", "pre", "td", "th", "tr", "section", "article":
		return true
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

// findElement returns the first descendant with the given tag, or nil.
func findElement(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// findElements returns all descendants with the given tag.
func findElements(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		out = append(out, n)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		out = append(out, findElements(child, tag)...)
	}
	return out
}

// textContent returns the concatenated text of a node's subtree with
// whitespace collapsed.
func textContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			if fields := strings.Fields(n.Data); len(fields) > 0 {
				sb.WriteString(strings.Join(fields, " "))
				sb.WriteString(" ")
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(n)
	return strings.TrimSpace(sb.String())
}

// joinLines trims each accumulated line and drops empty ones, producing
// one line per block element.
func joinLines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, "\n")
}
