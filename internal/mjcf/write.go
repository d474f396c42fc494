package mjcf

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Serialization mirrors the source layout: two-space indent, attributes in
// source order with verbatim text, comments in place. Parsing a fragment and
// writing it back reproduces every attribute value and comment exactly.

const indentStep = "  "

// Write serializes the model as a scene fragment to w.
func (m *Model) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeOpen(bw, "", "mujoco", m.attrs, false)
	writeComments(bw, m.headComments)
	if len(m.Assets) > 0 {
		writeAssetBlock(bw, m.Assets)
	}
	writeComments(bw, m.midComments)
	// A worldbody synthesized for a fragment that never declared one is not
	// written back; hand-built models always write theirs.
	if m.World != nil && (m.worldPresent || len(m.World.Elems) > 0 || len(m.World.attrs) > 0) {
		writeOpen(bw, indentStep, "worldbody", m.World.attrs, false)
		for _, e := range m.World.Elems {
			writeElem(bw, e, 2)
		}
		bw.WriteString(indentStep + "</worldbody>\n")
	}
	writeComments(bw, m.tailComments)
	bw.WriteString("</mujoco>\n")
	return bw.Flush()
}

func writeComments(bw *bufio.Writer, comments []Comment) {
	for _, c := range comments {
		bw.WriteString(indentStep + "<!--" + c.Text + "-->\n")
	}
}

// WriteFile serializes the model to the given file path.
func (m *Model) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeAssetBlock(bw *bufio.Writer, assets []Elem) {
	bw.WriteString(indentStep + "<asset>\n")
	for _, e := range assets {
		writeElem(bw, e, 2)
	}
	bw.WriteString(indentStep + "</asset>\n")
}

func writeElem(bw *bufio.Writer, e Elem, depth int) {
	ind := strings.Repeat(indentStep, depth)
	switch t := e.(type) {
	case *Body:
		if len(t.Elems) == 0 {
			writeOpen(bw, ind, "body", t.attrs, true)
			return
		}
		writeOpen(bw, ind, "body", t.attrs, false)
		for _, c := range t.Elems {
			writeElem(bw, c, depth+1)
		}
		bw.WriteString(ind + "</body>\n")
	case *Geom:
		writeOpen(bw, ind, "geom", t.attrs, true)
	case *Site:
		writeOpen(bw, ind, "site", t.attrs, true)
	case *Mesh:
		writeOpen(bw, ind, "mesh", t.attrs, true)
	case *Texture:
		writeOpen(bw, ind, "texture", t.attrs, true)
	case *Material:
		writeOpen(bw, ind, "material", t.attrs, true)
	case Comment:
		bw.WriteString(ind + "<!--" + t.Text + "-->\n")
	}
}

// writeOpen writes an indented opening tag with its attributes; selfClose
// emits an empty-element tag.
func writeOpen(bw *bufio.Writer, ind, name string, attrs []attr, selfClose bool) {
	bw.WriteString(ind + "<" + name)
	for _, a := range attrs {
		bw.WriteString(" " + a.name + `="` + escapeAttr(a.value) + `"`)
	}
	if selfClose {
		bw.WriteString("/>\n")
		return
	}
	bw.WriteString(">\n")
}

var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeAttr(s string) string {
	if !strings.ContainsAny(s, `&<>"`) {
		return s
	}
	return attrEscaper.Replace(s)
}
