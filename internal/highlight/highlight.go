// Package highlight applies chroma syntax highlighting to code blocks in an element tree.
package highlight

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"

	"portfolio.dev/internal/dom"
)

const (
	languagePrefix = "language-"
	markerAttr     = "data-highlighted"
)

// Highlighter tokenises code blocks with chroma
type Highlighter struct {
	style  *chroma.Style
	logger *slog.Logger
}

// New creates a Highlighter for the named chroma style.
// Unknown style names fall back to chroma's default style.
func New(styleName string, logger *slog.Logger) *Highlighter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Highlighter{
		style:  styles.Get(styleName),
		logger: logger,
	}
}

// HighlightAll highlights every code block under root that has not been highlighted yet
func (h *Highlighter) HighlightAll(root *html.Node) {
	for _, code := range pendingBlocks(root) {
		if err := h.highlight(code); err != nil {
			h.logger.Warn("syntax highlighting failed", "error", err)
		}
		dom.SetAttr(code, markerAttr, "yes")
	}
}

// CSS writes the stylesheet for the configured style
func (h *Highlighter) CSS(w io.Writer) error {
	f := chromahtml.New(chromahtml.WithClasses(true))
	if err := f.WriteCSS(w, h.style); err != nil {
		return fmt.Errorf("writing highlight css: %w", err)
	}
	return nil
}

func pendingBlocks(root *html.Node) []*html.Node {
	return dom.FindAll(root, func(n *html.Node) bool {
		if n.Data != "code" || n.Parent == nil || n.Parent.Data != "pre" {
			return false
		}
		if _, done := dom.GetAttr(n, markerAttr); done {
			return false
		}
		return language(n) != ""
	})
}

// language returns the name from a language-* class, or "" if there is none
func language(n *html.Node) string {
	for _, c := range dom.Classes(n) {
		if strings.HasPrefix(c, languagePrefix) {
			return strings.TrimPrefix(c, languagePrefix)
		}
	}
	return ""
}

func lexerFor(lang, source string) chroma.Lexer {
	var l chroma.Lexer
	if lang != "auto" {
		l = lexers.Get(lang)
	}
	if l == nil {
		l = lexers.Analyse(source)
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

func (h *Highlighter) highlight(code *html.Node) error {
	source := dom.TextContent(code)
	lexer := lexerFor(language(code), source)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenising %s block: %w", lexer.Config().Name, err)
	}

	dom.Clear(code)
	for _, tok := range it.Tokens() {
		cls := tokenClass(tok.Type)
		if cls == "" {
			dom.Append(code, dom.TextNode(tok.Value))
			continue
		}
		dom.Append(code, dom.El("span", dom.Class(cls), dom.Text(tok.Value)))
	}

	dom.AddClass(code.Parent, "chroma")
	return nil
}

// tokenClass mirrors chroma's html formatter, falling back to the sub-category and category classes
func tokenClass(tt chroma.TokenType) string {
	for _, t := range []chroma.TokenType{tt, tt.SubCategory(), tt.Category()} {
		if cls, ok := chroma.StandardTypes[t]; ok && cls != "" {
			return cls
		}
	}
	return ""
}
