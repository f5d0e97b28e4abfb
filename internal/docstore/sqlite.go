package docstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"stubdoc/internal/helptext"
)

// SQLiteStore mirrors the JSON databases into a single queryable file,
// used by the verify command and available as an alternative backend.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS classes (
			class_name TEXT PRIMARY KEY,
			module_name TEXT,
			class_doc TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS members (
			class_name TEXT,
			section TEXT,
			member_name TEXT,
			doc TEXT,
			PRIMARY KEY (class_name, section, member_name)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_classes_module ON classes(module_name);`,
		`CREATE INDEX IF NOT EXISTS idx_members_class ON members(class_name);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveModule upserts one module's class docs in a single transaction.
func (s *SQLiteStore) SaveModule(ctx context.Context, moduleName string, docs map[string]*helptext.ClassDoc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	classStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO classes (class_name, module_name, class_doc)
		VALUES (?, ?, ?)
		ON CONFLICT(class_name) DO UPDATE SET
			module_name=excluded.module_name,
			class_doc=excluded.class_doc
	`)
	if err != nil {
		return err
	}
	defer classStmt.Close()

	memberStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO members (class_name, section, member_name, doc)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(class_name, section, member_name) DO UPDATE SET
			doc=excluded.doc
	`)
	if err != nil {
		return err
	}
	defer memberStmt.Close()

	for className, doc := range docs {
		if _, err := classStmt.Exec(className, moduleName, doc.Description); err != nil {
			return fmt.Errorf("failed to save class %s: %w", className, err)
		}
		for _, sec := range doc.Sections {
			for _, m := range sec.Members {
				if _, err := memberStmt.Exec(className, sec.Name, m.Name, m.Doc); err != nil {
					return fmt.Errorf("failed to save member %s.%s: %w", className, m.Name, err)
				}
			}
		}
	}

	return tx.Commit()
}

// ClassCount reports how many classes a module has stored.
func (s *SQLiteStore) ClassCount(ctx context.Context, moduleName string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM classes WHERE module_name = ?`, moduleName).Scan(&n)
	return n, err
}

// MemberDoc looks up one member's stored documentation. The empty string
// means the member is not stored.
func (s *SQLiteStore) MemberDoc(ctx context.Context, className, memberName string) (string, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM members WHERE class_name = ? AND member_name = ?`, className, memberName).Scan(&doc)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return doc, err
}

// ModuleSummary is one row of the verify report.
type ModuleSummary struct {
	ModuleName string
	Classes    int
	Members    int
}

// Summaries reports per-module class and member counts, sorted by module.
func (s *SQLiteStore) Summaries(ctx context.Context) ([]ModuleSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.module_name, COUNT(DISTINCT c.class_name), COUNT(m.member_name)
		FROM classes c
		LEFT JOIN members m ON m.class_name = c.class_name
		GROUP BY c.module_name
		ORDER BY c.module_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ModuleSummary
	for rows.Next() {
		var sum ModuleSummary
		if err := rows.Scan(&sum.ModuleName, &sum.Classes, &sum.Members); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}
