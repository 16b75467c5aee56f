package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/repository"
)

// Compile-time check that *DB implements repository.ContentRepository.
var _ repository.ContentRepository = (*DB)(nil)

// Load reads the stored document for a domain. An absent row is reported
// as found=false, not as an error.
func (db *DB) Load(ctx context.Context, domain repository.Domain) (json.RawMessage, bool, error) {
	var data string
	err := db.conn.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE domain = ?`,
		string(domain),
	).Scan(&data)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("sqlite: loading %s document: %w", domain, err)
	}

	return json.RawMessage(data), true, nil
}

// Save replaces the domain's document and appends a revision, in one
// transaction so the audit trail can never miss a save.
func (db *DB) Save(ctx context.Context, domain repository.Domain, data json.RawMessage) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: beginning save of %s document: %w", domain, err)
	}
	defer tx.Rollback()

	now := time.Now()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (domain, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(domain) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(domain), string(data), now,
	)
	if err != nil {
		return fmt.Errorf("sqlite: saving %s document: %w", domain, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO document_revisions (id, domain, data, saved_at) VALUES (?, ?, ?, ?)`,
		xid.New().String(), string(domain), string(data), now,
	)
	if err != nil {
		return fmt.Errorf("sqlite: recording %s revision: %w", domain, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: committing save of %s document: %w", domain, err)
	}
	return nil
}

// Revisions returns the domain's saved versions, newest first.
func (db *DB) Revisions(ctx context.Context, domain repository.Domain, limit int) ([]repository.Revision, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, domain, data, saved_at
		 FROM document_revisions
		 WHERE domain = ?
		 ORDER BY saved_at DESC, id DESC
		 LIMIT ?`,
		string(domain), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing %s revisions: %w", domain, err)
	}
	defer rows.Close()

	revisions := make([]repository.Revision, 0, limit)
	for rows.Next() {
		var (
			r    repository.Revision
			dom  string
			data string
		)
		if err := rows.Scan(&r.ID, &dom, &data, &r.SavedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning revision row: %w", err)
		}
		r.Domain = repository.Domain(dom)
		r.Data = json.RawMessage(data)
		revisions = append(revisions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating revisions: %w", err)
	}

	return revisions, nil
}
