// Package dom exposes parsed markup as a tree of elements with the
// text/tail split the renderer works against: an element owns the text
// before its first child, and every child owns the text that follows it.
package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Element is one node of the source markup tree. It is read-only after
// parsing.
type Element struct {
	Tag      string            // lower-case tag name
	Attrs    map[string]string // attribute name -> value
	Text     string            // text before the first child element
	Tail     string            // text following this element inside its parent
	Children []*Element
}

// ParseDocument parses markup from r into an element tree rooted at the
// document element. Character encoding is detected from content.
func ParseDocument(r io.Reader) (*Element, error) {
	cr, err := charset.NewReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("unable to detect document encoding: %w", err)
	}
	doc, err := html.Parse(cr)
	if err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}

	root := firstElement(doc)
	if root == nil {
		return nil, fmt.Errorf("document has no elements")
	}
	return convert(root), nil
}

func firstElement(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// convert builds the Element view of n, splitting text nodes into the
// owning element's Text and the preceding sibling's Tail.
func convert(n *html.Node) *Element {
	el := &Element{Tag: strings.ToLower(n.Data)}
	if len(n.Attr) > 0 {
		el.Attrs = make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			el.Attrs[strings.ToLower(a.Key)] = a.Val
		}
	}

	var last *Element
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if last == nil {
				el.Text += c.Data
			} else {
				last.Tail += c.Data
			}
		case html.ElementNode:
			child := convert(c)
			el.Children = append(el.Children, child)
			last = child
		}
	}
	return el
}

// Attr returns the value of the named attribute, or "".
func (e *Element) Attr(name string) string {
	if e == nil || e.Attrs == nil {
		return ""
	}
	return e.Attrs[name]
}

// Classes returns the class attribute split into tokens.
func (e *Element) Classes() []string {
	return strings.Fields(e.Attr("class"))
}

// FirstClass returns the first class token, or "".
func (e *Element) FirstClass() string {
	if cls := e.Classes(); len(cls) > 0 {
		return cls[0]
	}
	return ""
}

// HasClass reports whether the class attribute contains the token.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// TextContent returns all text of the element and its descendants in
// document order, excluding the element's own tail.
func (e *Element) TextContent() string {
	var sb strings.Builder
	e.appendText(&sb)
	return sb.String()
}

func (e *Element) appendText(sb *strings.Builder) {
	sb.WriteString(e.Text)
	for _, c := range e.Children {
		c.appendText(sb)
		sb.WriteString(c.Tail)
	}
}

// selector is the parsed form of the simple selectors the renderer uses:
// tag, .class, tag.class, each optionally with an [attr] presence test.
type selector struct {
	tag   string
	class string
	attr  string
}

func parseSelector(s string) selector {
	var sel selector
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '['); i >= 0 {
		if j := strings.IndexByte(s[i:], ']'); j > 0 {
			sel.attr = s[i+1 : i+j]
		}
		s = s[:i]
	}
	if tag, class, found := strings.Cut(s, "."); found {
		sel.tag = tag
		sel.class = class
	} else {
		sel.tag = s
	}
	return sel
}

func (sel selector) matches(e *Element) bool {
	if sel.tag != "" && e.Tag != sel.tag {
		return false
	}
	if sel.class != "" && !e.HasClass(sel.class) {
		return false
	}
	if sel.attr != "" {
		if _, ok := e.Attrs[sel.attr]; !ok {
			return false
		}
	}
	return sel.tag != "" || sel.class != "" || sel.attr != ""
}

// FindAll returns the element and its descendants matching the selector,
// in document order. Supported forms: "tag", ".class", "tag.class" and an
// optional "[attr]" presence suffix.
func (e *Element) FindAll(selStr string) []*Element {
	sel := parseSelector(selStr)
	var out []*Element
	e.walk(func(n *Element) {
		if sel.matches(n) {
			out = append(out, n)
		}
	})
	return out
}

// Find returns the first match of FindAll, or nil.
func (e *Element) Find(selStr string) *Element {
	sel := parseSelector(selStr)
	var found *Element
	e.walk(func(n *Element) {
		if found == nil && sel.matches(n) {
			found = n
		}
	})
	return found
}

// Has reports whether the selector matches the element or any descendant.
func (e *Element) Has(selStr string) bool {
	return e.Find(selStr) != nil
}

func (e *Element) walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.walk(fn)
	}
}
