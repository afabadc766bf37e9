// Package render writes aligned documents to presentation formats. The
// HTML renderer produces a self-contained side-by-side page with images
// inlined as data URIs.
package render

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/tsawler/interleave/model"
)

// Renderer writes an aligned document to a writer.
type Renderer interface {
	Render(doc *model.AlignedDocument, w io.Writer) error
}

// HTML renders an aligned document as a standalone HTML page with the
// two languages in parallel columns. Matched image pairs sit side by
// side inside their block; unmatched images span both columns.
type HTML struct {
	// Title is the page title. Empty means "Bilingual Edition".
	Title string
}

// NewHTML returns an HTML renderer with the given page title.
func NewHTML(title string) *HTML {
	return &HTML{Title: title}
}

type pageView struct {
	Title  string
	Lang1  string
	Lang2  string
	Front1 string
	Front2 string
	Back1  string
	Back2  string
	Blocks []blockView
}

type blockView struct {
	Text1  string
	Text2  string
	Images []imageView
}

type imageView struct {
	Matched  bool
	Src1     template.URL
	Src2     template.URL
	Caption1 string
	Caption2 string
}

// Render writes the document as HTML.
func (h *HTML) Render(doc *model.AlignedDocument, w io.Writer) error {
	view := pageView{
		Title: h.Title,
		Lang1: doc.Languages[0],
		Lang2: doc.Languages[1],
	}
	if view.Title == "" {
		view.Title = "Bilingual Edition"
	}
	view.Front1 = doc.Front[view.Lang1]
	view.Front2 = doc.Front[view.Lang2]
	view.Back1 = doc.Back[view.Lang1]
	view.Back2 = doc.Back[view.Lang2]

	for _, block := range doc.Main {
		bv := blockView{}
		if block.Segment1 != nil {
			bv.Text1 = block.Segment1.Text
		}
		if block.Segment2 != nil {
			bv.Text2 = block.Segment2.Text
		}
		for _, pair := range block.Images {
			iv := imageView{Matched: pair.Matched()}
			if pair.Image1 != nil {
				iv.Src1 = dataURI(pair.Image1.Data)
				iv.Caption1 = pair.Image1.Caption
			}
			if pair.Image2 != nil {
				iv.Src2 = dataURI(pair.Image2.Data)
				iv.Caption2 = pair.Image2.Caption
			}
			bv.Images = append(bv.Images, iv)
		}
		view.Blocks = append(view.Blocks, bv)
	}

	if err := pageTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// dataURI encodes image bytes as a data URI, sniffing the content type.
// Empty data yields an empty URI and the template falls back to a
// placeholder.
func dataURI(data []byte) template.URL {
	if len(data) == 0 {
		return ""
	}
	contentType := http.DetectContentType(data)
	return template.URL("data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data))
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, "Noto Serif CJK SC", serif; max-width: 70em; margin: 0 auto; padding: 1em; }
h1 { text-align: center; font-size: 1.4em; }
.matter { display: flex; gap: 2em; color: #555; font-size: 0.9em; }
.matter > div { flex: 1; white-space: pre-wrap; }
.block { display: flex; gap: 2em; margin-bottom: 0.8em; }
.block > .cell { flex: 1; }
.cell.absent { color: #999; }
.pair { display: flex; gap: 2em; margin: 1em 0; }
.pair > figure { flex: 1; margin: 0; text-align: center; }
.single { margin: 1em 0; text-align: center; }
figure img { max-width: 100%; }
figcaption { font-size: 0.85em; color: #555; }
.placeholder { border: 1px dashed #bbb; padding: 2em; color: #999; }
hr { border: none; border-top: 1px solid #ddd; margin: 2em 0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if or .Front1 .Front2}}<div class="matter front"><div lang="{{.Lang1}}">{{.Front1}}</div><div lang="{{.Lang2}}">{{.Front2}}</div></div>
<hr>{{end}}
<main>
{{range .Blocks}}<div class="block">
<div class="cell{{if not .Text1}} absent{{end}}" lang="{{$.Lang1}}">{{.Text1}}</div>
<div class="cell{{if not .Text2}} absent{{end}}" lang="{{$.Lang2}}">{{.Text2}}</div>
</div>
{{range .Images}}{{if .Matched}}<div class="pair">
<figure>{{if .Src1}}<img src="{{.Src1}}" alt="{{.Caption1}}">{{else}}<div class="placeholder">{{.Caption1}}</div>{{end}}{{if .Caption1}}<figcaption>{{.Caption1}}</figcaption>{{end}}</figure>
<figure>{{if .Src2}}<img src="{{.Src2}}" alt="{{.Caption2}}">{{else}}<div class="placeholder">{{.Caption2}}</div>{{end}}{{if .Caption2}}<figcaption>{{.Caption2}}</figcaption>{{end}}</figure>
</div>
{{else}}<div class="single">
<figure>{{if .Src1}}<img src="{{.Src1}}" alt="{{.Caption1}}">{{end}}{{if .Src2}}<img src="{{.Src2}}" alt="{{.Caption2}}">{{end}}{{if not (or .Src1 .Src2)}}<div class="placeholder">{{or .Caption1 .Caption2}}</div>{{end}}{{if or .Caption1 .Caption2}}<figcaption>{{or .Caption1 .Caption2}}</figcaption>{{end}}</figure>
</div>
{{end}}{{end}}{{end}}</main>
{{if or .Back1 .Back2}}<hr>
<div class="matter back"><div lang="{{.Lang1}}">{{.Back1}}</div><div lang="{{.Lang2}}">{{.Back2}}</div></div>{{end}}
</body>
</html>
`))
