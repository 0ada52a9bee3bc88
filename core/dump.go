// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"cogentcore.org/compose/tree"
)

// DumpTo writes a description of the given element and all of its
// descendants to the given terminal output, one element per line,
// indented by depth. Styling follows the color profile of the output.
func DumpTo(o *termenv.Output, e Element) {
	e.AsTree().WalkDown(func(n tree.Node) bool {
		v := n.(Element).AsView()
		depth := -1
		v.WalkUp(func(tree.Node) bool {
			depth++
			return tree.Continue
		})
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(o.String(v.Name).Bold().String())
		b.WriteString(" ")
		b.WriteString(o.String(v.TypeName()).Foreground(o.Color("4")).String())
		if v.ID != NoID {
			b.WriteString(" #" + strconv.Itoa(v.ID))
		}
		if v.LayoutParams != nil {
			b.WriteString(" ")
			b.WriteString(o.String("[" + v.LayoutParams.String() + "]").Faint().String())
		}
		if te, ok := n.(TextElement); ok {
			b.WriteString(" " + strconv.Quote(te.AsTextView().Text))
		}
		fmt.Fprintln(o, b.String())
		return tree.Continue
	})
}

// Dump writes a plain-text description of the given element tree to w.
func Dump(w io.Writer, e Element) {
	DumpTo(termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii)), e)
}

// DumpString returns a plain-text description of the given element tree.
func DumpString(e Element) string {
	var b strings.Builder
	Dump(&b, e)
	return b.String()
}
