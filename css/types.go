package css

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "13px", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "absolute", "center", etc.
}

// Props maps property names to parsed values within one rule.
type Props map[string]Value

// Get returns the raw string for a property, or "" if not declared.
func (p Props) Get(name string) string {
	if v, ok := p[name]; ok {
		return v.Raw
	}
	return ""
}

// Has reports whether the property is declared, regardless of its value.
func (p Props) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Stylesheet holds all parsed rules keyed by their exact selector string.
// Later rules with the same selector overwrite earlier declarations per
// property; no specificity beyond exact-selector match is modeled. Pseudo
// element selectors keep their raw form (".bullet-item::before").
type Stylesheet struct {
	Rules     map[string]Props // selector -> properties
	Selectors []string         // selectors in first-seen source order
	Warnings  []string         // notes on skipped constructs
}

// Rule returns the properties declared for the exact selector, or nil.
func (s *Stylesheet) Rule(selector string) Props {
	if s == nil {
		return nil
	}
	return s.Rules[selector]
}

// Merge combines the rules for the given selectors in order, later selectors
// winning per property. Selectors without rules are skipped.
func (s *Stylesheet) Merge(selectors ...string) Props {
	merged := make(Props)
	if s == nil {
		return merged
	}
	for _, sel := range selectors {
		for name, val := range s.Rules[sel] {
			merged[name] = val
		}
	}
	return merged
}

// WriteTo writes the stylesheet in source order, implementing io.WriterTo.
// Property order within a rule is sorted for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, sel := range s.Selectors {
		props := s.Rules[sel]

		n, err := fmt.Fprintf(w, "%s {\n", sel)
		total += int64(n)
		if err != nil {
			return total, err
		}

		names := make([]string, 0, len(props))
		for name := range props {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			n, err = fmt.Fprintf(w, "  %s: %s;\n", name, props[name].Raw)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}

		n, err = fmt.Fprint(w, "}\n")
		total += int64(n)
		if err != nil {
			return total, err
		}

		if i < len(s.Selectors)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
