package dom

import (
	"strings"

	"golang.org/x/net/html"
)

type declaration struct {
	prop, val string
}

func parseStyle(s string) []declaration {
	var out []declaration
	for _, part := range strings.Split(s, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		out = append(out, declaration{prop: prop, val: strings.TrimSpace(val)})
	}
	return out
}

func formatStyle(decls []declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.prop + ": " + d.val
	}
	return strings.Join(parts, "; ")
}

// GetStyle returns the inline value of prop, or "" if unset
func GetStyle(n *html.Node, prop string) string {
	v, _ := GetAttr(n, "style")
	for _, d := range parseStyle(v) {
		if d.prop == prop {
			return d.val
		}
	}
	return ""
}

// SetStyle sets prop in the inline style, keeping declaration order.
// An empty val removes the declaration.
func SetStyle(n *html.Node, prop, val string) {
	v, _ := GetAttr(n, "style")
	decls := parseStyle(v)

	out := decls[:0]
	replaced := false
	for _, d := range decls {
		if d.prop == prop {
			if val == "" {
				continue
			}
			d.val = val
			replaced = true
		}
		out = append(out, d)
	}
	if !replaced && val != "" {
		out = append(out, declaration{prop: prop, val: val})
	}

	if len(out) == 0 {
		RemoveAttr(n, "style")
		return
	}
	SetAttr(n, "style", formatStyle(out))
}
