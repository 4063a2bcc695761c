package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"figure_catalog/internal/logger"
	"figure_catalog/internal/models"
)

// Saver сохраняет одну фигурку.
type Saver interface {
	SaveFigure(ctx context.Context, f models.Figure) (int, error)
}

// Result - итог импорта.
type Result struct {
	Saved  int
	Failed int
}

var client = &http.Client{Timeout: 10 * time.Second}

// FetchFigures загружает JSON-массив фигурок по url.
func FetchFigures(ctx context.Context, url string) ([]models.Figure, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	var figures []models.Figure
	if err := json.NewDecoder(resp.Body).Decode(&figures); err != nil {
		return nil, fmt.Errorf("decode figures: %w", err)
	}
	return figures, nil
}

// Import сохраняет фигурки по одной. Ошибка одной записи не прерывает импорт.
func Import(ctx context.Context, store Saver, figures []models.Figure) Result {
	var res Result
	for _, f := range figures {
		log := logger.Log.WithFields(logger.Fields{"name": f.Name, "series": f.Series})
		if f.Name == "" {
			log.Warn("Skipping figure without name")
			res.Failed++
			continue
		}
		if _, err := store.SaveFigure(ctx, f); err != nil {
			log.Warnf("Failed to save figure: %v", err)
			res.Failed++
			continue
		}
		res.Saved++
	}
	logger.Log.WithFields(logger.Fields{"saved": res.Saved, "failed": res.Failed}).Info("Import finished")
	return res
}

// Run загружает фигурки по url и сохраняет их.
func Run(ctx context.Context, store Saver, url string) (Result, error) {
	figures, err := FetchFigures(ctx, url)
	if err != nil {
		return Result{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	return Import(ctx, store, figures), nil
}
