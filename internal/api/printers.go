// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// =============================================================================
// 3D PRINTERS
// =============================================================================

// ListPrinters returns the composite views for all printers.
func (c *Client) ListPrinters(ctx context.Context) ([]model.PrinterView, error) {
	var out []model.PrinterView
	err := c.Get(ctx, "/infrastructure/printers", &out)
	return out, err
}

// GetPrinter returns one printer's composite view, addressed by the
// printer device id.
func (c *Client) GetPrinter(ctx context.Context, deviceID int64) (*model.PrinterView, error) {
	var out model.PrinterView
	if err := c.Get(ctx, "/infrastructure/printers/"+itoa(deviceID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CameraStreamURL returns the MJPEG pass-through URL for a printer's
// camera. The client embeds this URL and never parses its contents.
func (c *Client) CameraStreamURL(deviceID int64) string {
	return c.URL("/infrastructure/printers/" + itoa(deviceID) + "/camera")
}
