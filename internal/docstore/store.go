package docstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"stubdoc/internal/helptext"
)

// ClassRecord is the persisted form of one class's documentation.
type ClassRecord struct {
	ClassName      string         `json:"class_name"`
	ModuleName     string         `json:"module_name"`
	ClassDoc       string         `json:"class_doc"`
	StructuredDocs StructuredDocs `json:"structured_docs"`
}

// StructuredDocs groups member documentation by help section header.
type StructuredDocs struct {
	ClassDoc string                       `json:"class_doc"`
	Sections map[string]map[string]string `json:"sections"`
}

// Store reads and writes per-module documentation databases: one JSON file
// per VTK module under a common directory, each validated against the
// document schema before it hits disk.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the database file path for a module.
func (s *Store) Path(moduleName string) string {
	return filepath.Join(s.dir, moduleName+".json")
}

// Save validates and writes one module's documentation database.
func (s *Store) Save(moduleName string, docs map[string]*helptext.ClassDoc) error {
	records := make(map[string]ClassRecord, len(docs))
	for name, doc := range docs {
		records[name] = toRecord(moduleName, doc)
	}

	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal docs for %s: %w", moduleName, err)
	}
	if err := validateDocs(b); err != nil {
		return fmt.Errorf("doc database for %s failed validation: %w", moduleName, err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(s.Path(moduleName), b, 0644)
}

// Load reads one module's documentation database back into class docs.
func (s *Store) Load(moduleName string) (map[string]*helptext.ClassDoc, error) {
	b, err := os.ReadFile(s.Path(moduleName))
	if err != nil {
		return nil, err
	}

	var records map[string]ClassRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("failed to parse doc database %s: %w", s.Path(moduleName), err)
	}

	docs := make(map[string]*helptext.ClassDoc, len(records))
	for name, rec := range records {
		docs[name] = fromRecord(rec)
	}
	return docs, nil
}

// Modules lists the module names with a database file present, sorted.
func (s *Store) Modules() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var modules []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		modules = append(modules, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(modules)
	return modules, nil
}

func toRecord(moduleName string, doc *helptext.ClassDoc) ClassRecord {
	sections := make(map[string]map[string]string, len(doc.Sections))
	for _, sec := range doc.Sections {
		members := make(map[string]string, len(sec.Members))
		for _, m := range sec.Members {
			members[m.Name] = m.Doc
		}
		sections[sec.Name] = members
	}
	return ClassRecord{
		ClassName:  doc.ClassName,
		ModuleName: moduleName,
		ClassDoc:   doc.Description,
		StructuredDocs: StructuredDocs{
			ClassDoc: doc.Description,
			Sections: sections,
		},
	}
}

func fromRecord(rec ClassRecord) *helptext.ClassDoc {
	doc := &helptext.ClassDoc{
		ClassName:   rec.ClassName,
		ModuleName:  rec.ModuleName,
		Description: rec.StructuredDocs.ClassDoc,
	}

	sectionNames := make([]string, 0, len(rec.StructuredDocs.Sections))
	for name := range rec.StructuredDocs.Sections {
		sectionNames = append(sectionNames, name)
	}
	sort.Strings(sectionNames)

	for _, secName := range sectionNames {
		members := rec.StructuredDocs.Sections[secName]
		memberNames := make([]string, 0, len(members))
		for name := range members {
			memberNames = append(memberNames, name)
		}
		sort.Strings(memberNames)

		sec := helptext.Section{Name: secName}
		for _, name := range memberNames {
			sec.Members = append(sec.Members, helptext.Member{Name: name, Doc: members[name]})
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}
