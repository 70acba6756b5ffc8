// Package style resolves concrete visual properties for markup elements by
// cascading inline styles, stylesheet rules and theme fallbacks.
package style

import (
	"strings"

	"go.uber.org/zap"

	"slidec/css"
	"slidec/dom"
)

// Resolver merges style declarations for elements. Precedence, highest wins:
// the element's inline style attribute, then the stylesheet rules for the
// selectors the caller lists (later entries win), then the caller-supplied
// fallback at each Get site. The resolver never infers specificity from
// selector complexity; callers request the exact selector strings they mean,
// in precedence order.
type Resolver struct {
	Theme Theme

	sheet  *css.Stylesheet
	parser *css.Parser
	log    *zap.Logger
}

// NewResolver creates a resolver over the parsed stylesheet and theme.
func NewResolver(sheet *css.Stylesheet, theme Theme, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		Theme:  theme,
		sheet:  sheet,
		parser: css.NewParser(log),
		log:    log.Named("style"),
	}
}

// Sheet returns the underlying stylesheet.
func (r *Resolver) Sheet() *css.Stylesheet {
	return r.sheet
}

// Inline parses the element's style attribute.
func (r *Resolver) Inline(el *dom.Element) css.Props {
	return r.parser.ParseInline(el.Attr("style"))
}

// Resolve merges the stylesheet rules for the given selectors (low to high)
// with the element's inline style on top. The result is ephemeral and
// recomputed per use.
func (r *Resolver) Resolve(el *dom.Element, selectors ...string) Resolved {
	props := r.sheet.Merge(selectors...)
	for name, val := range r.Inline(el) {
		props[name] = val
	}
	return Resolved{props: props}
}

// Rules merges stylesheet rules only, without an element.
func (r *Resolver) Rules(selectors ...string) Resolved {
	return Resolved{props: r.sheet.Merge(selectors...)}
}

// Font returns the font family declared for "body" or ".slide", skipping
// system-font aliases, or the theme fallback.
func (r *Resolver) Font() string {
	for _, sel := range []string{"body", ".slide"} {
		ff := r.sheet.Rule(sel).Get("font-family")
		if ff == "" {
			continue
		}
		for _, part := range strings.Split(ff, ",") {
			name := css.Unquote(strings.TrimSpace(part))
			if name == "" || name == "-apple-system" || name == "BlinkMacSystemFont" {
				continue
			}
			return name
		}
	}
	return r.Theme.FontFamily
}

// Resolved is the merged property view for one element or selector set.
type Resolved struct {
	props css.Props
}

// Raw returns the raw value string for a property, or "".
func (v Resolved) Raw(key string) string {
	return v.props.Get(key)
}

// Has reports whether the property was declared.
func (v Resolved) Has(key string) bool {
	_, ok := v.props[key]
	return ok
}

// Px reads a pixel length, falling back to def when the property is absent
// or reads as zero.
func (v Resolved) Px(key string, def float64) float64 {
	if n := Px(v.Raw(key)); n != 0 {
		return n
	}
	return def
}

// Color parses a color property, falling back when absent or unparseable.
func (v Resolved) Color(key string, fallback Color) Color {
	if c, ok := ParseColor(v.Raw(key)); ok {
		return c
	}
	return fallback
}

// ColorOK parses a color property without a fallback.
func (v Resolved) ColorOK(key string) (Color, bool) {
	return ParseColor(v.Raw(key))
}

// BackgroundOK checks "background" then "background-color".
func (v Resolved) BackgroundOK() (Color, bool) {
	if c, ok := ParseColor(v.Raw("background")); ok {
		return c, true
	}
	return ParseColor(v.Raw("background-color"))
}

// Background resolves the background fill with a fallback.
func (v Resolved) Background(fallback Color) Color {
	if c, ok := v.BackgroundOK(); ok {
		return c
	}
	return fallback
}

// Bold resolves font-weight against a default weight string.
func (v Resolved) Bold(defWeight string) bool {
	weight := v.Raw("font-weight")
	if weight == "" {
		weight = defWeight
	}
	return IsBoldWeight(weight)
}

// BorderColor extracts the color of a border shorthand property.
func (v Resolved) BorderColor(key string, fallback Color) Color {
	if c, ok := BorderColor(v.Raw(key)); ok {
		return c
	}
	return fallback
}
