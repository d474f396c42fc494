package mjcf

import "fmt"

// Load-time error taxonomy. All errors surface to the caller during Load;
// none are recoverable internally, so loading is all-or-nothing.

// MalformedSyntaxError reports structurally invalid input: bad XML, an
// unexpected element, or an attribute value that does not parse.
type MalformedSyntaxError struct {
	Msg  string
	Line int // 1-based source line when known, 0 otherwise
	Err  error
}

func (e *MalformedSyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed scene fragment at line %d: %s", e.Line, e.Msg)
	}
	return "malformed scene fragment: " + e.Msg
}

func (e *MalformedSyntaxError) Unwrap() error { return e.Err }

// ReferenceError reports a dangling name reference: a geom or material names
// an asset that is not declared in the asset list.
type ReferenceError struct {
	Kind     string // kind of the missing asset: "mesh", "texture", "material"
	Name     string // the undeclared name
	Referrer string // description of the referring element
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s references undeclared %s %q", e.Referrer, e.Kind, e.Name)
}

// DuplicateNameError reports a name collision within a scope that requires
// uniqueness (sibling bodies, sites, or assets of one kind).
type DuplicateNameError struct {
	Kind string // "body", "site", "mesh", "texture", "material"
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate %s name %q", e.Kind, e.Name)
}

// NotFoundError reports a failed lookup of a named entity (e.g. a site query).
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}
