package db_test

import (
	"context"
	"os"
	"testing"
	"time"

	"figure_catalog/internal/db"
	"figure_catalog/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *db.Database {
	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	database := &db.Database{Pool: pool}
	require.NoError(t, database.EnsureSchema(ctx))

	_, err = pool.Exec(ctx, `TRUNCATE TABLE figures RESTART IDENTITY;`)
	require.NoError(t, err)

	return database
}

func TestSaveFigure(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	t.Run("save new figure", func(t *testing.T) {
		id, err := database.SaveFigure(ctx, models.Figure{Name: "Asuka", Series: "Evangelion"})
		require.NoError(t, err)
		require.Equal(t, 1, id)
	})

	t.Run("upsert keeps id", func(t *testing.T) {
		id, err := database.SaveFigure(ctx, models.Figure{Name: "Asuka", Series: "Evangelion", Manufacturer: "Kotobukiya"})
		require.NoError(t, err)
		require.Equal(t, 1, id)
	})
}

func TestListFigures(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	names := []string{"Rei", "Asuka", "Shinji", "Misato", "Kaworu"}
	for i, name := range names {
		_, err := database.SaveFigure(ctx, models.Figure{
			Name:       name,
			Series:     "Evangelion",
			AcquiredAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	count, err := database.CountFigures(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 5, count)

	page, err := database.ListFigures(ctx, models.PaginationParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "Shinji", page[0].Name)
	require.Equal(t, "Asuka", page[1].Name)

	count, err = database.CountFigures(ctx, "sh")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
