// Package sqlite persists model snapshots in a local SQLite database
// with an optimistic version guard against concurrent writers.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/Switchdoctorstu/Archimate-Ingester/domain/model"
	apperrors "github.com/Switchdoctorstu/Archimate-Ingester/pkg/errors"
	"github.com/Switchdoctorstu/Archimate-Ingester/pkg/utils"
)

const schema = `
CREATE TABLE IF NOT EXISTS elements (
	guid        TEXT PRIMARY KEY,
	type        TEXT NOT NULL,
	name        TEXT,
	description TEXT,
	folder_type TEXT,
	version     INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS relationships (
	guid        TEXT PRIMARY KEY,
	source_guid TEXT NOT NULL,
	target_guid TEXT NOT NULL,
	type        TEXT NOT NULL,
	description TEXT,
	version     INTEGER NOT NULL DEFAULT 1,
	FOREIGN KEY (source_guid) REFERENCES elements(guid) ON DELETE CASCADE,
	FOREIGN KEY (target_guid) REFERENCES elements(guid) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS model_metadata (
	key   TEXT PRIMARY KEY,
	value TEXT
);

CREATE INDEX IF NOT EXISTS idx_relationships_source ON relationships(source_guid);
CREATE INDEX IF NOT EXISTS idx_relationships_target ON relationships(target_guid);
`

// ModelRepository stores model snapshots in SQLite
type ModelRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewModelRepository opens (creating when necessary) the database at
// path and ensures the schema exists.
func NewModelRepository(path string, logger *zap.Logger) (*ModelRepository, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperrors.NewDatabaseError("create storage dir", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, apperrors.NewDatabaseError("open", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, apperrors.NewDatabaseError("init schema", err)
	}

	return &ModelRepository{db: db, logger: logger}, nil
}

// Close releases the database handle
func (r *ModelRepository) Close() error {
	return r.db.Close()
}

// Version returns the stored snapshot version, 0 when no snapshot exists
func (r *ModelRepository) Version(ctx context.Context) (int, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM model_metadata WHERE key = 'version'`).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.NewDatabaseError("read version", err)
	}
	var version int
	if _, err := fmt.Sscanf(value, "%d", &version); err != nil {
		return 0, apperrors.NewDatabaseError("parse version", err)
	}
	return version, nil
}

// Export overwrites the stored snapshot with the model, inside one
// transaction. The write is rejected when the stored version no longer
// matches expectedVersion.
func (r *ModelRepository) Export(ctx context.Context, m *model.Model, expectedVersion int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewDatabaseError("begin export", err)
	}
	defer tx.Rollback()

	var stored string
	err = tx.QueryRowContext(ctx,
		`SELECT value FROM model_metadata WHERE key = 'version'`).Scan(&stored)
	if err != nil && err != sql.ErrNoRows {
		return apperrors.NewDatabaseError("read version", err)
	}
	if err == nil && stored != fmt.Sprintf("%d", expectedVersion) {
		return apperrors.NewConflictError(
			fmt.Sprintf("model store is at version %s, expected %d", stored, expectedVersion))
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM relationships`); err != nil {
		return apperrors.NewDatabaseError("clear relationships", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM elements`); err != nil {
		return apperrors.NewDatabaseError("clear elements", err)
	}

	newVersion := expectedVersion + 1
	for _, f := range m.Folders {
		for _, n := range f.Nodes {
			if n.IsRelationship() {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO elements (guid, type, name, description, folder_type, version)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				n.ID, n.Type, n.Name, n.Documentation, f.Kind, newVersion); err != nil {
				return apperrors.NewDatabaseError("insert element", err)
			}
		}
	}
	for _, rel := range m.Relationships() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO relationships (guid, source_guid, target_guid, type, description, version)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rel.ID, rel.Source, rel.Target, rel.Type, rel.Documentation, newVersion); err != nil {
			return apperrors.NewDatabaseError("insert relationship", err)
		}
	}

	for key, value := range map[string]string{
		"version":  fmt.Sprintf("%d", newVersion),
		"name":     m.Name,
		"saved_at": utils.NowRFC3339(),
	} {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO model_metadata (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value); err != nil {
			return apperrors.NewDatabaseError("write metadata", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewDatabaseError("commit export", err)
	}

	el, rels := m.Counts()
	r.logger.Info("model exported to store",
		zap.Int("version", newVersion),
		zap.Int("elements", el),
		zap.Int("relationships", rels),
	)
	return nil
}

// Import rebuilds a model from the stored snapshot. Elements return to
// the folder kind they were stored with; relationships go to Relations.
func (r *ModelRepository) Import(ctx context.Context) (*model.Model, error) {
	name := "New Model"
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM model_metadata WHERE key = 'name'`).Scan(&name)
	if err != nil && err != sql.ErrNoRows {
		return nil, apperrors.NewDatabaseError("read metadata", err)
	}

	m := model.New(name)

	rows, err := r.db.QueryContext(ctx,
		`SELECT guid, type, name, description, folder_type FROM elements`)
	if err != nil {
		return nil, apperrors.NewDatabaseError("read elements", err)
	}
	defer rows.Close()
	for rows.Next() {
		var n model.Node
		var folderKind sql.NullString
		var elName, desc sql.NullString
		if err := rows.Scan(&n.ID, &n.Type, &elName, &desc, &folderKind); err != nil {
			return nil, apperrors.NewDatabaseError("scan element", err)
		}
		n.Name = elName.String
		n.Documentation = desc.String

		folder := m.FolderByKind(folderKind.String)
		if folder == nil {
			folder = m.FolderByKind(model.FolderKindOther)
		}
		node := n
		folder.Add(&node)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError("read elements", err)
	}

	relRows, err := r.db.QueryContext(ctx,
		`SELECT guid, source_guid, target_guid, type, description FROM relationships`)
	if err != nil {
		return nil, apperrors.NewDatabaseError("read relationships", err)
	}
	defer relRows.Close()
	relations := m.RelationsFolder()
	for relRows.Next() {
		var n model.Node
		var desc sql.NullString
		if err := relRows.Scan(&n.ID, &n.Source, &n.Target, &n.Type, &desc); err != nil {
			return nil, apperrors.NewDatabaseError("scan relationship", err)
		}
		n.Documentation = desc.String
		node := n
		relations.Add(&node)
	}
	if err := relRows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError("read relationships", err)
	}

	return m, nil
}
