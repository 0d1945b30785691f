package postgres

import (
	"context"
	_ "embed"
	"strings"

	"storefront/internal/errors"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

//go:embed schema.sql
var schemaSQL string

// schemaStatements splits the embedded schema into single statements.
func schemaStatements() []string {
	parts := strings.Split(schemaSQL, ";")
	stmts := make([]string, 0, len(parts))
	for _, part := range parts {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}

	return stmts
}

// ApplySchema creates any missing tables. Every statement is idempotent.
func ApplySchema(ctx context.Context, db *gorm.DB) error {
	conn := db.WithContext(ctx).Clauses(dbresolver.Write)
	for _, stmt := range schemaStatements() {
		if err := conn.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to apply schema statement %q", firstLine(stmt))
		}
	}

	return nil
}

func firstLine(stmt string) string {
	if idx := strings.IndexByte(stmt, '\n'); idx >= 0 {
		return stmt[:idx]
	}

	return stmt
}
