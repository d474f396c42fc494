package mjcf

import (
	"bufio"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parsing uses a token-level xml.Decoder walk so comments survive in document
// order; struct unmarshaling would drop them. The fragment keeps superseded
// tuning alternatives inside comments, and those must stay comments: never
// parsed as live entities, never lost on a rewrite.

// ParseFile parses a scene fragment from the given file. It does not validate
// references or name uniqueness; see Load for the all-or-nothing variant.
func ParseFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(bufio.NewReader(f))
}

// Parse parses a scene fragment from r.
func Parse(r io.Reader) (*Model, error) {
	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return nil, &MalformedSyntaxError{Msg: "no root element"}
			}
			return nil, syntaxErr(d, "invalid XML", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			if se.Name.Local != "mujoco" {
				return nil, syntaxErr(d, "unexpected root element <"+se.Name.Local+">", nil)
			}
			return parseModel(d, se)
		}
	}
}

// Load parses the fragment at path and validates it. Loading is all-or-nothing:
// any syntax, reference, or duplicate-name error fails the whole load.
func Load(path string) (*Model, error) {
	m, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseModel(d *xml.Decoder, start xml.StartElement) (*Model, error) {
	m := &Model{attrs: keepAttrs(start)}
	for _, a := range m.attrs {
		if a.name == "model" {
			m.Name = a.value
		}
	}
	sawAsset := false
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, syntaxErr(d, "unterminated <mujoco>", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "asset":
				if err := parseAssets(d, m); err != nil {
					return nil, err
				}
				sawAsset = true
			case "worldbody":
				if m.worldPresent {
					return nil, syntaxErr(d, "multiple <worldbody> sections", nil)
				}
				b, err := parseBody(d, t)
				if err != nil {
					return nil, err
				}
				m.World = b
				m.worldPresent = true
			default:
				return nil, syntaxErr(d, "unsupported section <"+t.Name.Local+">", nil)
			}
		case xml.EndElement:
			if m.World == nil {
				m.World = &Body{}
			}
			return m, nil
		case xml.CharData:
			if err := wantBlank(d, t); err != nil {
				return nil, err
			}
		case xml.Comment:
			// Root-level comments carry no semantics but round-trip in place.
			c := Comment{Text: string(t)}
			switch {
			case m.worldPresent:
				m.tailComments = append(m.tailComments, c)
			case sawAsset:
				m.midComments = append(m.midComments, c)
			default:
				m.headComments = append(m.headComments, c)
			}
		}
	}
}

func parseAssets(d *xml.Decoder, m *Model) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return syntaxErr(d, "unterminated <asset>", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var e Elem
			switch t.Name.Local {
			case "mesh":
				e, err = newMesh(t)
			case "texture":
				e, err = newTexture(t)
			case "material":
				e, err = newMaterial(t)
			default:
				return syntaxErr(d, "unexpected asset element <"+t.Name.Local+">", nil)
			}
			if err != nil {
				return syntaxErr(d, err.Error(), err)
			}
			if err := d.Skip(); err != nil {
				return syntaxErr(d, "unterminated <"+t.Name.Local+">", err)
			}
			m.Assets = append(m.Assets, e)
		case xml.Comment:
			m.Assets = append(m.Assets, Comment{Text: string(t)})
		case xml.CharData:
			if err := wantBlank(d, t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// parseBody parses a <worldbody> or <body> element and its subtree.
func parseBody(d *xml.Decoder, start xml.StartElement) (*Body, error) {
	b := &Body{attrs: keepAttrs(start)}
	for _, a := range b.attrs {
		if a.name == "name" {
			b.Name = a.value
		}
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, syntaxErr(d, "unterminated <"+start.Name.Local+">", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "body":
				child, err := parseBody(d, t)
				if err != nil {
					return nil, err
				}
				b.Elems = append(b.Elems, child)
			case "geom":
				g, err := newGeom(t)
				if err != nil {
					return nil, syntaxErr(d, err.Error(), err)
				}
				if err := d.Skip(); err != nil {
					return nil, syntaxErr(d, "unterminated <geom>", err)
				}
				b.Elems = append(b.Elems, g)
			case "site":
				s, err := newSite(t)
				if err != nil {
					return nil, syntaxErr(d, err.Error(), err)
				}
				if err := d.Skip(); err != nil {
					return nil, syntaxErr(d, "unterminated <site>", err)
				}
				b.Elems = append(b.Elems, s)
			default:
				return nil, syntaxErr(d, "unexpected body element <"+t.Name.Local+">", nil)
			}
		case xml.Comment:
			b.Elems = append(b.Elems, Comment{Text: string(t)})
		case xml.CharData:
			if err := wantBlank(d, t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			return b, nil
		}
	}
}

func newMesh(start xml.StartElement) (*Mesh, error) {
	m := &Mesh{attrs: keepAttrs(start)}
	for _, a := range m.attrs {
		var err error
		switch a.name {
		case "name":
			m.Name = a.value
		case "file":
			m.File = a.value
		case "scale":
			m.Scale, err = parseVec3(a.value)
		}
		if err != nil {
			return nil, attrErr("mesh", a.name, err)
		}
	}
	return m, nil
}

func newTexture(start xml.StartElement) (*Texture, error) {
	t := &Texture{attrs: keepAttrs(start)}
	for _, a := range t.attrs {
		switch a.name {
		case "name":
			t.Name = a.value
		case "file":
			t.File = a.value
		}
	}
	return t, nil
}

func newMaterial(start xml.StartElement) (*Material, error) {
	m := &Material{attrs: keepAttrs(start)}
	for _, a := range m.attrs {
		var err error
		switch a.name {
		case "name":
			m.Name = a.value
		case "texture":
			m.TextureName = a.value
		case "reflectance":
			m.Reflectance, err = parseFloat(a.value)
		case "texrepeat":
			m.TexRepeat, err = parseVec2(a.value)
		case "texuniform":
			m.TexUniform, err = parseBool(a.value)
		}
		if err != nil {
			return nil, attrErr("material", a.name, err)
		}
	}
	return m, nil
}

func newGeom(start xml.StartElement) (*Geom, error) {
	g := &Geom{attrs: keepAttrs(start)}
	for _, a := range g.attrs {
		var err error
		switch a.name {
		case "pos":
			g.Pos, err = parseVec3(a.value)
		case "type":
			g.Type = a.value
		case "mesh":
			g.MeshName = a.value
		case "material":
			g.MaterialName = a.value
		case "solimp":
			g.SolImp, err = parseFloats(a.value, -1)
		case "solref":
			g.SolRef, err = parseFloats(a.value, -1)
		case "density":
			g.Density, err = parseFloat(a.value)
		case "friction":
			g.Friction, err = parseVec3(a.value)
		case "group":
			g.Group, err = strconv.Atoi(a.value)
		case "condim":
			g.CondDim, err = strconv.Atoi(a.value)
		case "rgba":
			g.RGBA, err = parseVec4(a.value)
		}
		if err != nil {
			return nil, attrErr("geom", a.name, err)
		}
	}
	return g, nil
}

func newSite(start xml.StartElement) (*Site, error) {
	s := &Site{attrs: keepAttrs(start)}
	for _, a := range s.attrs {
		var err error
		switch a.name {
		case "name":
			s.Name = a.value
		case "pos":
			s.Pos, err = parseVec3(a.value)
		case "size":
			s.Size, err = parseFloat(a.value)
		case "rgba":
			s.RGBA, err = parseVec4(a.value)
		}
		if err != nil {
			return nil, attrErr("site", a.name, err)
		}
	}
	return s, nil
}

func parseFloat(s string) (float64, error) {
	fs, err := parseFloats(s, 1)
	if err != nil {
		return 0, err
	}
	return fs[0], nil
}

// keepAttrs copies a start element's attributes verbatim, in source order.
func keepAttrs(start xml.StartElement) []attr {
	attrs := make([]attr, 0, len(start.Attr))
	for _, a := range start.Attr {
		attrs = append(attrs, attr{name: a.Name.Local, value: a.Value})
	}
	return attrs
}

// wantBlank rejects non-whitespace character data; the format has no text
// content outside attributes and comments.
func wantBlank(d *xml.Decoder, cd xml.CharData) error {
	if strings.TrimSpace(string(cd)) != "" {
		return syntaxErr(d, "unexpected text content", nil)
	}
	return nil
}

func attrErr(elem, name string, err error) error {
	return errors.New("bad " + elem + " attribute " + name + ": " + err.Error())
}

// syntaxErr wraps a low-level decode error, pulling the line number out of
// xml.SyntaxError when available.
func syntaxErr(d *xml.Decoder, msg string, err error) *MalformedSyntaxError {
	e := &MalformedSyntaxError{Msg: msg, Err: err}
	var xe *xml.SyntaxError
	if errors.As(err, &xe) {
		e.Line = xe.Line
		e.Msg = msg + ": " + xe.Msg
	}
	return e
}
