package mjcf

// Validate checks the parsed fragment's declarative invariants: name
// uniqueness (assets per kind, sibling bodies, sites fragment-wide) and
// reference integrity (geom -> mesh, geom -> material, material -> texture).
// The first violation is returned; a valid fragment returns nil.
func (m *Model) Validate() error {
	meshes := map[string]bool{}
	textures := map[string]bool{}
	materials := map[string]*Material{}
	for _, e := range m.Assets {
		switch t := e.(type) {
		case *Mesh:
			if meshes[t.Name] {
				return &DuplicateNameError{Kind: "mesh", Name: t.Name}
			}
			meshes[t.Name] = true
		case *Texture:
			if textures[t.Name] {
				return &DuplicateNameError{Kind: "texture", Name: t.Name}
			}
			textures[t.Name] = true
		case *Material:
			if materials[t.Name] != nil {
				return &DuplicateNameError{Kind: "material", Name: t.Name}
			}
			materials[t.Name] = t
		}
	}

	for _, mat := range materials {
		if mat.TextureName != "" && !textures[mat.TextureName] {
			return &ReferenceError{Kind: "texture", Name: mat.TextureName, Referrer: "material " + quoteName(mat.Name)}
		}
	}

	if m.World == nil {
		return nil
	}

	// Sites are looked up by name fragment-wide, so their names must be unique
	// across the whole body tree, not just among siblings.
	siteNames := map[string]bool{}
	return validateBody(m.World, meshes, materials, siteNames)
}

func validateBody(b *Body, meshes map[string]bool, materials map[string]*Material, siteNames map[string]bool) error {
	childNames := map[string]bool{}
	for _, e := range b.Elems {
		switch t := e.(type) {
		case *Body:
			if t.Name != "" {
				if childNames[t.Name] {
					return &DuplicateNameError{Kind: "body", Name: t.Name}
				}
				childNames[t.Name] = true
			}
			if err := validateBody(t, meshes, materials, siteNames); err != nil {
				return err
			}
		case *Site:
			if t.Name != "" {
				if siteNames[t.Name] {
					return &DuplicateNameError{Kind: "site", Name: t.Name}
				}
				siteNames[t.Name] = true
			}
		case *Geom:
			if err := validateGeom(t, b, meshes, materials); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateGeom(g *Geom, owner *Body, meshes map[string]bool, materials map[string]*Material) error {
	referrer := "geom in body " + quoteName(owner.Name)
	if g.Type == "mesh" && !meshes[g.MeshName] {
		return &ReferenceError{Kind: "mesh", Name: g.MeshName, Referrer: referrer}
	}
	if g.MaterialName != "" && materials[g.MaterialName] == nil {
		return &ReferenceError{Kind: "material", Name: g.MaterialName, Referrer: referrer}
	}
	return nil
}

func quoteName(name string) string {
	if name == "" {
		return "(anonymous)"
	}
	return `"` + name + `"`
}
