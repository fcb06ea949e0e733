package student

import "unicode/utf8"

// Record is one student's id/name/grade triple as stored on disk.
type Record struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Grade string `json:"grade" yaml:"grade"`
}

// Valid reports whether every field is valid UTF-8.
func (r Record) Valid() bool {
	return utf8.ValidString(r.ID) && utf8.ValidString(r.Name) && utf8.ValidString(r.Grade)
}

// Patch carries the optional fields of an update. A nil or empty field
// leaves the stored value untouched.
type Patch struct {
	Name  *string
	Grade *string
}

// PatchFromInput builds a Patch from raw prompt answers, treating blank
// answers as "skip".
func PatchFromInput(name, grade string) Patch {
	var p Patch
	if name != "" {
		p.Name = &name
	}
	if grade != "" {
		p.Grade = &grade
	}
	return p
}

// Apply overwrites the fields of r that p provides.
func (p Patch) Apply(r *Record) {
	if p.Name != nil && *p.Name != "" {
		r.Name = *p.Name
	}
	if p.Grade != nil && *p.Grade != "" {
		r.Grade = *p.Grade
	}
}

// IsEmpty reports whether applying p would change nothing.
func (p Patch) IsEmpty() bool {
	return (p.Name == nil || *p.Name == "") && (p.Grade == nil || *p.Grade == "")
}

func (p Patch) Valid() bool {
	return (p.Name == nil || utf8.ValidString(*p.Name)) && (p.Grade == nil || utf8.ValidString(*p.Grade))
}
