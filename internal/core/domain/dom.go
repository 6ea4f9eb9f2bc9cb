package domain

import (
	"strings"

	"github.com/beevik/etree"
)

// Navigation helpers over the parsed document tree. All of them are pure:
// they match by local element name regardless of namespace prefix and
// preserve document order.

// Children returns the direct child elements of el with the given local name,
// in document order.
func Children(el *etree.Element, local string) []*etree.Element {
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == local {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first direct child element with the given local
// name, or nil.
func FirstChild(el *etree.Element, local string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == local {
			return c
		}
	}
	return nil
}

// Descendants returns every element in the subtree rooted at el (excluding el
// itself) with the given local name, in document order.
func Descendants(el *etree.Element, local string) []*etree.Element {
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == local {
			out = append(out, c)
		}
		out = append(out, Descendants(c, local)...)
	}
	return out
}

// Attr returns the value of the attribute with the given local name,
// ignoring any namespace prefix.
func Attr(el *etree.Element, local string) (string, bool) {
	for _, a := range el.Attr {
		if a.Key == local {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether el carries an attribute with the given local name.
func HasAttr(el *etree.Element, local string) bool {
	_, ok := Attr(el, local)
	return ok
}

// Text returns the concatenation of el's character-data children.
func Text(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return b.String()
}

// TrimmedText returns Text with surrounding whitespace removed. Element
// values compared against expected constants use this form so that
// pretty-printed documents compare the same as compact ones.
func TrimmedText(el *etree.Element) string {
	return strings.TrimSpace(Text(el))
}
