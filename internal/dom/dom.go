// Package dom builds and queries HTML element trees without string templating.
// Every value ends up in a text node or attribute and is escaped on Render.
package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Option configures an element created by El
type Option func(n *html.Node)

// El creates an element node with the given tag
func El(tag string, opts ...Option) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// TextNode creates a bare text node
func TextNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// ID sets the id attribute
func ID(id string) Option {
	return func(n *html.Node) { SetAttr(n, "id", id) }
}

// Class adds one or more classes
func Class(classes ...string) Option {
	return func(n *html.Node) {
		for _, c := range classes {
			AddClass(n, c)
		}
	}
}

// Attr sets an arbitrary attribute
func Attr(key, val string) Option {
	return func(n *html.Node) { SetAttr(n, key, val) }
}

// Data sets a data-* attribute
func Data(key, val string) Option {
	return Attr("data-"+key, val)
}

// Style sets one style declaration
func Style(prop, val string) Option {
	return func(n *html.Node) { SetStyle(n, prop, val) }
}

// Text appends a text child
func Text(s string) Option {
	return func(n *html.Node) { n.AppendChild(TextNode(s)) }
}

// Children appends the given nodes, skipping nil entries
func Children(children ...*html.Node) Option {
	return func(n *html.Node) { Append(n, children...) }
}

// Append adds children to n, skipping nil entries
func Append(n *html.Node, children ...*html.Node) {
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
}

// Clear detaches every child of n
func Clear(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// GetAttr returns the value of key and whether it is present
func GetAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the attribute key
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes the attribute key if present
func RemoveAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}

// Classes returns the class list of n
func Classes(n *html.Node) []string {
	v, _ := GetAttr(n, "class")
	return strings.Fields(v)
}

// HasClass reports whether n carries class c
func HasClass(n *html.Node, c string) bool {
	for _, have := range Classes(n) {
		if have == c {
			return true
		}
	}
	return false
}

// AddClass adds c to the class list if missing
func AddClass(n *html.Node, c string) {
	c = strings.TrimSpace(c)
	if c == "" || HasClass(n, c) {
		return
	}
	SetAttr(n, "class", strings.Join(append(Classes(n), c), " "))
}

// RemoveClass removes c from the class list
func RemoveClass(n *html.Node, c string) {
	classes := Classes(n)
	out := classes[:0]
	for _, have := range classes {
		if have != c {
			out = append(out, have)
		}
	}
	if len(out) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(out, " "))
}

// ToggleClass adds or removes c depending on on
func ToggleClass(n *html.Node, c string, on bool) {
	if on {
		AddClass(n, c)
		return
	}
	RemoveClass(n, c)
}

// TextContent concatenates every text node below n
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// Render serializes n and its subtree as HTML
func Render(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return fmt.Errorf("rendering <%s>: %w", n.Data, err)
	}
	return nil
}

// String renders n to a string, used by tests and logging
func String(n *html.Node) string {
	var b strings.Builder
	if err := Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}
