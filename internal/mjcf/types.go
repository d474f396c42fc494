package mjcf

// attr is a single XML attribute with its verbatim source text. Attributes are
// kept in source order and re-emitted verbatim so a parse/write cycle preserves
// every value byte-for-byte (float formatting included).
type attr struct {
	name  string
	value string
}

// Comment is a free-text annotation preserved in document order. Comments carry
// no simulation semantics; the fragment uses them for tuning history and
// disabled alternative blocks, which must never surface as live entities.
type Comment struct {
	Text string
}

// Elem is one ordered child of a body or asset block: *Body, *Geom, *Site,
// *Mesh, *Texture, *Material, or Comment.
type Elem any

// Model is a parsed scene-description fragment: the asset declarations, the
// world body tree, and any comments, all in document order.
type Model struct {
	Name   string // model attribute on the root element; may be empty
	attrs  []attr
	Assets []Elem // ordered: *Mesh, *Texture, *Material, Comment
	World  *Body  // the world body; its children are the fragment's top-level bodies

	// worldPresent records whether the source declared a <worldbody>; a World
	// synthesized for a fragment without one is not written back.
	worldPresent bool
	// Root-level comments, bucketed by position relative to the asset block
	// and worldbody so they round-trip in place.
	headComments []Comment
	midComments  []Comment
	tailComments []Comment
}

// Body is a named node in the rigid-body hierarchy. The name may be empty
// (anonymous wrapper bodies are common); children, geoms, and sites are owned
// by the body and stored in document order in Elems.
type Body struct {
	Name  string
	attrs []attr
	Elems []Elem
}

// Bodies returns the direct child bodies in document order.
func (b *Body) Bodies() []*Body {
	var out []*Body
	for _, e := range b.Elems {
		if c, ok := e.(*Body); ok {
			out = append(out, c)
		}
	}
	return out
}

// Geoms returns the geoms owned directly by this body in document order.
func (b *Body) Geoms() []*Geom {
	var out []*Geom
	for _, e := range b.Elems {
		if g, ok := e.(*Geom); ok {
			out = append(out, g)
		}
	}
	return out
}

// Sites returns the sites owned directly by this body in document order.
func (b *Body) Sites() []*Site {
	var out []*Site
	for _, e := range b.Elems {
		if s, ok := e.(*Site); ok {
			out = append(out, s)
		}
	}
	return out
}

// Geom is a collidable/renderable shape attached to a body. SolImp and SolRef
// are engine-specific solver tuples controlling contact softness; their values
// are preserved verbatim rather than reinterpreted. Friction is anisotropic:
// sliding, torsional, rolling.
type Geom struct {
	attrs        []attr
	Pos          [3]float64
	Type         string // e.g. "mesh", "box", "sphere", "cylinder"
	MeshName     string // name ref into the mesh asset list when Type == "mesh"
	SolImp       []float64
	SolRef       []float64
	Density      float64
	Friction     [3]float64
	Group        int
	CondDim      int // number of contact-constraint directions
	MaterialName string
	RGBA         [4]float64
}

// Mesh is a named asset referencing an external triangle-mesh file, with a
// non-uniform scale applied at load time.
type Mesh struct {
	attrs []attr
	Name  string
	File  string
	Scale [3]float64
}

// Texture is a named asset referencing an external image file.
type Texture struct {
	attrs []attr
	Name  string
	File  string
}

// Material is a named surface-appearance asset referencing a texture by name.
type Material struct {
	attrs       []attr
	Name        string
	Reflectance float64
	TexRepeat   [2]float64
	TextureName string
	TexUniform  bool
}

// Site is a massless, non-colliding labeled reference point on a body. Sites
// are conventionally authored fully transparent (rgba alpha 0); external code
// looks them up by name to reason about the object's extents.
type Site struct {
	attrs []attr
	Name  string
	Pos   [3]float64
	Size  float64
	RGBA  [4]float64
}
