package page

import (
	"golang.org/x/net/html"

	"portfolio.dev/internal/dom"
)

const (
	htmxSrc        = "https://unpkg.com/htmx.org@1.9.12"
	fontAwesomeCSS = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"
)

var navLinks = []struct{ href, label string }{
	{"#hero", "Home"},
	{"#projects", "Projects"},
	{"#skills", "Skills"},
	{"#contact", "Contact"},
}

func document(opts Options, sections ...*html.Node) *html.Node {
	head := dom.El("head", dom.Children(
		dom.El("meta", dom.Attr("charset", "utf-8")),
		dom.El("meta", dom.Attr("name", "viewport"), dom.Attr("content", "width=device-width, initial-scale=1")),
		dom.El("title", dom.Text(opts.Title)),
		stylesheet("/static/style.css"),
		stylesheet("/static/highlight.css"),
		stylesheet(fontAwesomeCSS),
		dom.El("script", dom.Attr("src", htmxSrc), dom.Attr("defer", "")),
	))

	body := dom.El("body", dom.Children(navbar(opts.Owner), hero(opts)))
	dom.Append(body, sections...)
	dom.Append(body, dom.El("footer", dom.Class("footer"), dom.Text(opts.Owner)))

	doc := &html.Node{Type: html.DocumentNode}
	dom.Append(doc,
		&html.Node{Type: html.DoctypeNode, Data: "html"},
		dom.El("html", dom.Attr("lang", "en"), dom.Children(head, body)),
	)
	return doc
}

func stylesheet(href string) *html.Node {
	return dom.El("link", dom.Attr("rel", "stylesheet"), dom.Attr("href", href))
}

func navbar(owner string) *html.Node {
	menu := dom.El("ul", dom.Class("nav-menu"))
	for _, l := range navLinks {
		dom.Append(menu, dom.El("li", dom.Children(
			dom.El("a", dom.Attr("href", l.href), dom.Text(l.label)),
		)))
	}
	return dom.El("header", dom.Class("navbar"), dom.Children(
		dom.El("nav", dom.Children(
			dom.El("a", dom.Class("logo"), dom.Attr("href", "#hero"), dom.Text(owner)),
			menu,
		)),
	))
}

func hero(opts Options) *html.Node {
	return dom.El("section", dom.ID("hero"), dom.Class("hero"), dom.Children(
		dom.El("h1", dom.Text(opts.Title)),
		dom.El("p", dom.Class("tagline"), dom.Text(opts.Tagline)),
	))
}

func contactSection() *html.Node {
	return dom.El("section", dom.ID("contact"), dom.Class("contact"), dom.Children(
		dom.El("h2", dom.Class("section-title"), dom.Text("Contact")),
		ContactForm(),
		dom.El("div", dom.ID(IDContactResult), dom.Class("contact-result")),
	))
}

// ContactForm renders an empty contact form with the name, email and message fields
func ContactForm() *html.Node {
	return dom.El("form",
		dom.ID(IDContactForm),
		dom.Class("contact-form"),
		dom.Attr("method", "post"),
		dom.Attr("action", "/contact"),
		dom.Attr("hx-post", "/contact"),
		dom.Attr("hx-target", "#"+IDContactResult),
		dom.Attr("hx-on::after-request", "if(event.detail.successful) this.reset()"),
		dom.Children(
			field("input", "name", "Your name", dom.Attr("type", "text")),
			field("input", "email", "Email", dom.Attr("type", "email")),
			field("textarea", "message", "Message", dom.Attr("rows", "5")),
			dom.El("button", dom.Class("btn", "btn-primary"), dom.Attr("type", "submit"), dom.Text("Send")),
		),
	)
}

func field(tag, name, placeholder string, extra ...dom.Option) *html.Node {
	opts := append([]dom.Option{
		dom.ID(name),
		dom.Attr("name", name),
		dom.Attr("placeholder", placeholder),
		dom.Attr("required", ""),
	}, extra...)
	return dom.El("div", dom.Class("form-group"), dom.Children(dom.El(tag, opts...)))
}
