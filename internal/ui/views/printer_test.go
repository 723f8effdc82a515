// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lifehub-tui/internal/api"
	"github.com/jeranaias/lifehub-tui/internal/model"
	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
)

// The stream is complementary to a slow poll: the tick refetches the
// selected printer so dropped frames reconcile.
func TestPrinterPollRefreshesSelected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/infrastructure/printers/7", r.URL.Path)
		json.NewEncoder(w).Encode(model.PrinterView{
			Device: model.Device{ID: 7, FriendlyName: "K1", LastState: "printing"},
		})
	}))
	defer server.Close()

	p := NewPrinter(Context{Client: api.NewClient(server.URL), Theme: styles.NewTheme("catppuccin")})
	p.printers = []model.PrinterView{{Device: model.Device{ID: 7, FriendlyName: "K1", LastState: "idle"}}}
	p.loaded = true

	cmd := p.refreshSelected()
	require.NotNil(t, cmd)
	refreshed, ok := cmd().(printerRefreshedMsg)
	require.True(t, ok)

	p.Update(refreshed)
	assert.Equal(t, "printing", p.printers[0].Device.LastState)

	// The poll re-arms itself.
	assert.NotNil(t, p.Update(printerPollMsg{}))
}

func TestPrinterCameraCardShowsPassThroughURL(t *testing.T) {
	p := NewPrinter(Context{
		Client: api.NewClient("http://localhost:8087/api"),
		Theme:  styles.NewTheme("catppuccin"),
	})
	pv := model.PrinterView{
		Device: model.Device{ID: 7},
		Camera: &model.Device{FriendlyName: "Printer Cam", LastState: "streaming"},
	}
	out := p.renderCamera(pv, 80)
	assert.Contains(t, out, "/infrastructure/printers/7/camera")

	// No camera entity, no card.
	assert.Empty(t, p.renderCamera(model.PrinterView{Device: model.Device{ID: 7}}, 80))
}

// Hiding the page must release the event waiter; otherwise each visit
// leaks a goroutine parked on the abandoned channel.
func TestPrinterHideReleasesEventWaiter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer server.Close()

	p := NewPrinter(Context{Client: api.NewClient(server.URL), Theme: styles.NewTheme("catppuccin")})
	p.events = make(chan model.StateChange, 1)
	p.openStream()
	cmd := p.waitForEvent()
	require.NotNil(t, cmd)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	p.Hide()

	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("event waiter still blocked after the stream closed")
	}
}
