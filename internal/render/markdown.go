package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Markdown renders the slide content/subtitle markdown subset (headings,
// bold/italic, lists, blockquotes, code) to HTML. Links are deliberately
// rendered as plain underlined text: slides are presented full screen and a
// live anchor would navigate away from the deck.
func Markdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

var md = goldmark.New(
	goldmark.WithRendererOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(&inertLinkRenderer{}, 100),
		),
		html.WithHardWraps(),
	),
)

// inertLinkRenderer overrides link rendering to an underlined span.
type inertLinkRenderer struct{}

func (r *inertLinkRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
}

func (r *inertLinkRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		w.WriteString(`<span class="underline underline-offset-2 opacity-80">`)
	} else {
		w.WriteString("</span>")
	}
	return ast.WalkContinue, nil
}

func (r *inertLinkRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	link := node.(*ast.AutoLink)
	w.WriteString(`<span class="underline underline-offset-2 opacity-80">`)
	w.Write(util.EscapeHTML(link.URL(source)))
	w.WriteString("</span>")
	return ast.WalkContinue, nil
}
