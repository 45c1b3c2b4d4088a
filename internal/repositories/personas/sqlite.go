package personas

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS personas (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	year INTEGER NOT NULL,
	cultural_zone TEXT NOT NULL,
	origin_id TEXT,
	data_json TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_personas_created ON personas(created_at);
CREATE INDEX IF NOT EXISTS idx_personas_origin ON personas(origin_id);
`

type personaRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Year         int            `db:"year"`
	CulturalZone string         `db:"cultural_zone"`
	OriginID     sql.NullString `db:"origin_id"`
	DataJSON     string         `db:"data_json"`
	CreatedAt    time.Time      `db:"created_at"`
}

// SQLiteRepository stores personas in a SQLite file. The persona itself is a
// JSON column; the other columns exist for listing and lookups.
type SQLiteRepository struct {
	db    *sqlx.DB
	clock TimeProvider
}

// OpenSQLite opens or creates the database at path and migrates it.
// ":memory:" gives a private in-memory database.
func OpenSQLite(path string, clock TimeProvider) (*SQLiteRepository, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, perr.WrapWithCode(err, perr.CodeUnavailable, "open sqlite")
	}
	if path == ":memory:" {
		// every connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, perr.Wrap(err, "migrate personas")
	}
	if clock == nil {
		clock = RealTimeProvider{}
	}
	return &SQLiteRepository{db: db, clock: clock}, nil
}

// Close closes the database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) Create(ctx context.Context, persona *entities.Persona) error {
	if err := validate(persona); err != nil {
		return err
	}

	stored := persona.Clone()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.clock.Now()
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return perr.Wrap(err, "failed to marshal persona")
	}

	row := personaRow{
		ID:           stored.ID,
		Name:         stored.Character.Name,
		Year:         stored.Year,
		CulturalZone: string(stored.CulturalZone),
		DataJSON:     string(data),
		CreatedAt:    stored.CreatedAt,
	}
	if stored.Origin != nil && stored.Origin.PersonaID != "" {
		row.OriginID = sql.NullString{String: stored.Origin.PersonaID, Valid: true}
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO personas (id, name, year, cultural_zone, origin_id, data_json, created_at)
		VALUES (:id, :name, :year, :cultural_zone, :origin_id, :data_json, :created_at)`, row)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return perr.AlreadyExistsf("persona with ID '%s' already exists", persona.ID).
				WithMeta("persona_id", persona.ID)
		}
		return perr.Wrap(err, "failed to insert persona")
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*entities.Persona, error) {
	if id == "" {
		return nil, perr.InvalidArgument("persona ID is required")
	}

	var row personaRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM personas WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, perr.NotFoundf("persona with ID '%s' not found", id).
			WithMeta("persona_id", id)
	}
	if err != nil {
		return nil, perr.Wrap(err, "failed to get persona")
	}
	return decodeRow(row)
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*entities.Persona, error) {
	var rows []personaRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM personas ORDER BY created_at DESC, id`); err != nil {
		return nil, perr.Wrap(err, "failed to list personas")
	}

	result := make([]*entities.Persona, 0, len(rows))
	for _, row := range rows {
		p, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// ListByOrigin returns the personas opened from origin's family
func (r *SQLiteRepository) ListByOrigin(ctx context.Context, originID string) ([]*entities.Persona, error) {
	var rows []personaRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM personas WHERE origin_id = ? ORDER BY created_at, id`, originID); err != nil {
		return nil, perr.Wrap(err, "failed to list personas by origin")
	}

	result := make([]*entities.Persona, 0, len(rows))
	for _, row := range rows {
		p, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return perr.InvalidArgument("persona ID is required")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM personas WHERE id = ?`, id)
	if err != nil {
		return perr.Wrap(err, "failed to delete persona")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return perr.NotFoundf("persona with ID '%s' not found", id).
			WithMeta("persona_id", id)
	}
	return nil
}

func decodeRow(row personaRow) (*entities.Persona, error) {
	var p entities.Persona
	if err := json.Unmarshal([]byte(row.DataJSON), &p); err != nil {
		return nil, perr.Wrapf(err, "failed to unmarshal persona %s", row.ID)
	}
	return &p, nil
}
