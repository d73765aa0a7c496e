package trip

import (
	"context"
	"database/sql"
)

type pgArchive struct {
	db *sql.DB
}

// NewArchive wraps a Postgres connection as a turn archive.
//
// Expected schema:
//
//	CREATE TABLE turns (
//	    id         bigserial PRIMARY KEY,
//	    user_id    text        NOT NULL,
//	    role       text        NOT NULL,
//	    content    text        NOT NULL,
//	    created_at timestamptz NOT NULL DEFAULT now()
//	);
func NewArchive(db *sql.DB) Archive {
	return &pgArchive{db: db}
}

func (a *pgArchive) SaveTurn(ctx context.Context, userID, role, content string) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO turns (user_id, role, content)
		VALUES ($1, $2, $3)
	`, userID, role, content)
	return err
}
