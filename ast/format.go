// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"
)

// A Formatter carries the settings for pretty-printing values.
// A zero value is ready for use with default settings.
type Formatter struct{}

func (f Formatter) indent() string { return "  " }

func (f Formatter) maxLineItems() int { return 3 }

// Format renders a pretty-printed representation of v to w with default
// settings. The output is valid input for Parse when v is, and parses
// back to a tree equal to v.
func Format(w io.Writer, v Element) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(v Element) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders a pretty-printed representation of v to w using the settings
// from f.
func (f Formatter) Format(w io.Writer, v Element) error {
	tw := tabwriter.NewWriter(w, 4, 4, 1, ' ', 0)
	f.formatElement(tw, v, "", "")
	return tw.Flush()
}

type writeFlusher interface {
	io.Writer
	Flush() error
}

// formatElement writes a representation of v to w indented by indent.
func (f Formatter) formatElement(w writeFlusher, v Element, init, indent string) {
	switch t := v.(type) {
	case *Array:
		f.formatArray(w, t, init, indent)
	case *Leaf:
		fmt.Fprint(w, init, t.JSON())
	case *Object:
		f.formatObject(w, t, init, indent)
	default:
		panic(fmt.Sprintf("unknown element type %T", v))
	}
}

func (f Formatter) formatArray(w writeFlusher, a *Array, init, indent string) {
	if f.isBoring(a) {
		fmt.Fprint(w, init, "[")
		for i, v := range a.vals {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			f.formatElement(w, v, "", "")
		}
		io.WriteString(w, "]")
		return
	}

	fmt.Fprint(w, init, "[\n")
	adent := indent + f.indent()
	for i, v := range a.vals {
		f.formatElement(w, v, adent, adent)
		if i+1 < len(a.vals) {
			io.WriteString(w, ",")
		}
		io.WriteString(w, "\n")
	}
	w.Flush()
	fmt.Fprint(w, indent, "]")
}

func (f Formatter) formatObject(w writeFlusher, o *Object, init, indent string) {
	if f.isBoring(o) {
		fmt.Fprint(w, init, "{")
		for i, m := range o.members {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			fmt.Fprint(w, `"`, m.Key, `": `)
			f.formatElement(w, m.Value, "", "")
		}
		io.WriteString(w, "}")
		return
	}

	fmt.Fprint(w, init, "{\n")
	mdent := indent + f.indent()
	prevBoring, curBoring := true, true
	for i, m := range o.members {
		// Leave extra space before the next member if either it or its
		// predecessor was non-boring.
		prevBoring, curBoring = curBoring, f.isBoring(m.Value)

		if i != 0 && !(prevBoring && curBoring) {
			io.WriteString(w, "\n")
		}

		fmt.Fprint(w, mdent, `"`, m.Key, `"`, f.objSep(m.Value))
		f.formatElement(w, m.Value, "", mdent)
		if i+1 < len(o.members) {
			io.WriteString(w, ",")
		}
		io.WriteString(w, "\n")
	}
	w.Flush()
	fmt.Fprint(w, indent, "}")
}

// objSep returns a key-value separator for the given value.
// Boring values get indented so they line up in columns;
// non-boring values are stapled directly to the key.
func (f Formatter) objSep(v Element) string {
	if f.isBoring(v) {
		return ":\t"
	}
	return ": "
}

// isBoring reports whether v has a simple enough structure that it can be
// rendered on one line.
func (f Formatter) isBoring(v Element) bool {
	switch t := v.(type) {
	case *Array:
		for i, v := range t.vals {
			if !f.isBoring(v) || i >= f.maxLineItems() {
				return false
			}
		}
		return true
	case *Leaf:
		return true
	case *Object:
		if len(t.members) == 1 {
			return f.isBoring(t.members[0].Value)
		}
		return len(t.members) == 0
	default:
		return false
	}
}
