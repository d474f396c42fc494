package mjcf

// Lookup helpers for external consumers: sites and bodies are addressed by
// name (e.g. "bottom_site" / "top_site" / "horizontal_radius_site" to reason
// about the object's extents without rendering them).

// Site returns the named site anywhere in the body tree.
func (m *Model) Site(name string) (*Site, error) {
	var found *Site
	m.walkBodies(func(b *Body) {
		for _, s := range b.Sites() {
			if s.Name == name && found == nil {
				found = s
			}
		}
	})
	if found == nil {
		return nil, &NotFoundError{Kind: "site", Name: name}
	}
	return found, nil
}

// Body returns the named body anywhere in the tree.
func (m *Model) Body(name string) (*Body, error) {
	var found *Body
	m.walkBodies(func(b *Body) {
		if b.Name == name && found == nil {
			found = b
		}
	})
	if found == nil {
		return nil, &NotFoundError{Kind: "body", Name: name}
	}
	return found, nil
}

// AllBodies returns every body in the tree (the world body included) in
// document order.
func (m *Model) AllBodies() []*Body {
	var out []*Body
	m.walkBodies(func(b *Body) {
		out = append(out, b)
	})
	return out
}

// Sites returns every site in the body tree in document order.
func (m *Model) Sites() []*Site {
	var out []*Site
	m.walkBodies(func(b *Body) {
		out = append(out, b.Sites()...)
	})
	return out
}

// Geoms returns every geom in the body tree in document order.
func (m *Model) Geoms() []*Geom {
	var out []*Geom
	m.walkBodies(func(b *Body) {
		out = append(out, b.Geoms()...)
	})
	return out
}

// MeshAsset returns the named mesh asset, or nil.
func (m *Model) MeshAsset(name string) *Mesh {
	for _, e := range m.Assets {
		if t, ok := e.(*Mesh); ok && t.Name == name {
			return t
		}
	}
	return nil
}

// MaterialAsset returns the named material asset, or nil.
func (m *Model) MaterialAsset(name string) *Material {
	for _, e := range m.Assets {
		if t, ok := e.(*Material); ok && t.Name == name {
			return t
		}
	}
	return nil
}

// TextureAsset returns the named texture asset, or nil.
func (m *Model) TextureAsset(name string) *Texture {
	for _, e := range m.Assets {
		if t, ok := e.(*Texture); ok && t.Name == name {
			return t
		}
	}
	return nil
}

// walkBodies visits every body in the tree, world first, depth-first in
// document order.
func (m *Model) walkBodies(fn func(*Body)) {
	if m.World == nil {
		return
	}
	walkBody(m.World, fn)
}

func walkBody(b *Body, fn func(*Body)) {
	fn(b)
	for _, c := range b.Bodies() {
		walkBody(c, fn)
	}
}
