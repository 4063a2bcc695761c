package db

import (
	"context"
	"fmt"

	"figure_catalog/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS figures (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		series TEXT NOT NULL DEFAULT '',
		manufacturer TEXT NOT NULL DEFAULT '',
		release_year INTEGER NOT NULL DEFAULT 0,
		acquired_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		UNIQUE (name, series)
	);
`

// Database инкапсулирует пул соединений к PostgreSQL.
type Database struct {
	Pool *pgxpool.Pool
}

// NewDB создаёт новый пул соединений по connString и возвращает Database.
func NewDB(ctx context.Context, connString string) (*Database, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return &Database{Pool: pool}, nil
}

// Close закрывает пул соединений.
func (db *Database) Close() {
	db.Pool.Close()
}

func (db *Database) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// EnsureSchema создаёт таблицу figures, если её ещё нет.
func (db *Database) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SaveFigure сохраняет фигурку и возвращает её id.
// При конфликте по (name, series) обновляются остальные поля.
func (db *Database) SaveFigure(ctx context.Context, f models.Figure) (int, error) {
	var id int
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO figures (name, series, manufacturer, release_year, acquired_at)
        VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
        ON CONFLICT (name, series) DO UPDATE
        SET manufacturer = EXCLUDED.manufacturer, release_year = EXCLUDED.release_year
        RETURNING id
    `, f.Name, f.Series, f.Manufacturer, f.ReleaseYear, nullTime(f)).Scan(&id)
	return id, err
}

// CountFigures возвращает количество фигурок, чьё имя содержит search.
func (db *Database) CountFigures(ctx context.Context, search string) (int, error) {
	var count int
	err := db.Pool.QueryRow(ctx, `
        SELECT COUNT(*)
        FROM figures
        WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
    `, search).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count figures: %w", err)
	}
	return count, nil
}

// ListFigures возвращает одну страницу фигурок, новые поступления первыми.
func (db *Database) ListFigures(ctx context.Context, params models.PaginationParams) ([]models.Figure, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, name, series, manufacturer, release_year, acquired_at
        FROM figures
        WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
        ORDER BY acquired_at DESC, id DESC
        LIMIT $2 OFFSET $3
    `, params.Search, params.PageSize, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("list figures: %w", err)
	}
	defer rows.Close()

	figures := make([]models.Figure, 0, params.PageSize)
	for rows.Next() {
		var f models.Figure
		if err := rows.Scan(&f.ID, &f.Name, &f.Series, &f.Manufacturer, &f.ReleaseYear, &f.AcquiredAt); err != nil {
			return nil, fmt.Errorf("scan figure: %w", err)
		}
		figures = append(figures, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list figures: %w", err)
	}
	return figures, nil
}

func nullTime(f models.Figure) any {
	if f.AcquiredAt.IsZero() {
		return nil
	}
	return f.AcquiredAt
}
