package api

import (
	"context"

	"github.com/partitura/partitura_admin/internal/model"
)

const (
	sheetMusicPath  = "sheet-music/"
	instrumentsPath = "instruments/"
)

func (c *Client) GetSheetMusic(ctx context.Context, params ListParams) ([]model.SheetMusic, int, error) {
	return list[model.SheetMusic](ctx, c, sheetMusicPath, params)
}

func (c *Client) GetInstruments(ctx context.Context, params ListParams) ([]model.Instrument, int, error) {
	return list[model.Instrument](ctx, c, instrumentsPath, params)
}
