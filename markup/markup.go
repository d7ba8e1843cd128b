// Package markup parses a small HTML subset into content elements the
// flow engine can lay out.
//
// Supported markup:
//
//   - <p> — paragraph; <sup class="note">entry text</sup> inside a
//     paragraph becomes a footnote reference with that entry
//   - <h1>..<h3> — paragraphs with a larger font size
//   - <hr> — horizontal rule; <hr class="pagebreak"> forces a page
//     break instead
//   - <div>/<section> — nested flow over their children; with
//     class="columns" (and optional data-count) a column container
//
// Everything else is ignored. The point is ingestion for demos and
// tests, not HTML fidelity.
package markup

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/typeflow/content"
	"github.com/tsawler/typeflow/style"
)

// Open parses an HTML file into content children
func Open(filename string) ([]*content.Element, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse parses HTML from an io.Reader into content children
func Parse(r io.Reader) ([]*content.Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	body := findBody(doc)
	if body == nil {
		return nil, nil
	}
	return parseChildren(body), nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

func parseChildren(n *html.Node) []*content.Element {
	var children []*content.Element
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if el := parseNode(c); el != nil {
			children = append(children, el)
		}
	}
	return children
}

func parseNode(n *html.Node) *content.Element {
	if n.Type != html.ElementNode {
		return nil
	}
	switch n.Data {
	case "p":
		return parseParagraph(n, 0)
	case "h1":
		return parseParagraph(n, 20)
	case "h2":
		return parseParagraph(n, 16)
	case "h3":
		return parseParagraph(n, 13)
	case "hr":
		if hasClass(n, "pagebreak") {
			return content.Break()
		}
		return content.Rule()
	case "div", "section":
		if hasClass(n, "columns") {
			count := 2
			if v := attr(n, "data-count"); v != "" {
				if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
					count = parsed
				}
			}
			return content.Columns(count, parseChildren(n)...)
		}
		return content.Flow(parseChildren(n)...)
	default:
		return nil
	}
}

// parseParagraph assembles a paragraph's running text and footnote
// references. A non-zero fontSize styles the paragraph (headings).
func parseParagraph(n *html.Node, fontSize float64) *content.Element {
	var sb strings.Builder
	var notes []*content.Element
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		for ; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.TextNode:
				sb.WriteString(c.Data)
			case c.Type == html.ElementNode && c.Data == "sup" && hasClass(c, "note"):
				notes = append(notes, content.Footnote(content.Paragraph(textContent(c))))
			case c.Type == html.ElementNode:
				walk(c.FirstChild)
			}
		}
	}
	walk(n.FirstChild)

	el := content.Paragraph(strings.Join(strings.Fields(sb.String()), " "))
	el.Children = notes
	if fontSize > 0 {
		el.Styles = style.Properties{style.KeyFontSize: fontSize}
	}
	return el
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		for ; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			} else {
				walk(c.FirstChild)
			}
		}
	}
	walk(n.FirstChild)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
