package helptext

// ClassDoc is the structured form of one class's help() dump: the class-level
// description plus the ordered documentation sections found in the dump.
type ClassDoc struct {
	ClassName   string
	ModuleName  string
	Description string
	Sections    []Section
}

// Section groups member documentation under one help section header, e.g.
// "Methods defined here:" or "Methods inherited from vtkAlgorithm:".
// Member names are unique within a section; order follows the dump.
type Section struct {
	Name    string
	Members []Member
}

// Member is one documented member. Doc is already cleaned and, for members
// of inherited sections, carries the "Inherited from <Parent>." prefix.
type Member struct {
	Name string
	Doc  string
}

// Section returns the section with the given header name, or nil.
func (d *ClassDoc) Section(name string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Name == name {
			return &d.Sections[i]
		}
	}
	return nil
}

// MemberDocs flattens all sections into a member name to description map.
// Later sections win on name collisions, matching help() ordering where
// inherited sections follow the class's own methods.
func (d *ClassDoc) MemberDocs() map[string]string {
	docs := make(map[string]string)
	for _, sec := range d.Sections {
		for _, m := range sec.Members {
			docs[m.Name] = m.Doc
		}
	}
	return docs
}

// MemberCount reports the total number of documented members across sections.
func (d *ClassDoc) MemberCount() int {
	n := 0
	for _, sec := range d.Sections {
		n += len(sec.Members)
	}
	return n
}

// Empty reports whether the class has neither a description nor any members.
func (d *ClassDoc) Empty() bool {
	return d.Description == "" && len(d.Sections) == 0
}
