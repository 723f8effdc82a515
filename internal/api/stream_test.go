// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSEReaderSplitsEvents(t *testing.T) {
	input := "data: one\n\ndata: two\ndata: three\n\n"
	r := NewSSEReader(strings.NewReader(input))

	ev, err := r.ReadEvent()
	require.NoError(t, err)
	assert.Equal(t, "one", string(ev))

	// Multiple data lines of one event join with a newline.
	ev, err = r.ReadEvent()
	require.NoError(t, err)
	assert.Equal(t, "two\nthree", string(ev))

	_, err = r.ReadEvent()
	assert.Equal(t, io.EOF, err)
}

func TestSSEReaderTrailingEventWithoutBlankLine(t *testing.T) {
	r := NewSSEReader(strings.NewReader("data: last"))
	ev, err := r.ReadEvent()
	require.NoError(t, err)
	assert.Equal(t, "last", string(ev))
	_, err = r.ReadEvent()
	assert.Equal(t, io.EOF, err)

	// The unterminated line may also be the tail of a multi-line event.
	r = NewSSEReader(strings.NewReader("data: a\n\ndata: b\ndata: c"))
	ev, err = r.ReadEvent()
	require.NoError(t, err)
	assert.Equal(t, "a", string(ev))
	ev, err = r.ReadEvent()
	require.NoError(t, err)
	assert.Equal(t, "b\nc", string(ev))
}

func TestSSEReaderSkipsComments(t *testing.T) {
	r := NewSSEReader(strings.NewReader(": keepalive\nevent: tick\ndata: x\n\n"))
	ev, err := r.ReadEvent()
	require.NoError(t, err)
	assert.Equal(t, "x", string(ev))
}

func TestStreamDeliversFrames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))
		flusher := w.(http.Flusher)
		for i := 0; i < 3; i++ {
			fmt.Fprintf(w, "data: {\"n\": %d}\n\n", i)
			flusher.Flush()
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	frames := make(chan int, 3)
	sub := client.Stream(context.Background(), "/stream",
		func(data json.RawMessage) {
			var f struct {
				N int `json:"n"`
			}
			if json.Unmarshal(data, &f) == nil {
				frames <- f.N
			}
		},
		func(err error) {
			t.Errorf("unexpected stream error: %v", err)
		})
	defer sub.Close()

	<-sub.Done()
	close(frames)
	var got []int
	for n := range frames {
		got = append(got, n)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestStreamCloseIsSilent(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.(http.Flusher).Flush()
		<-r.Context().Done()
		close(blocked)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	errs := make(chan error, 1)
	sub := client.Stream(context.Background(), "/stream",
		func(json.RawMessage) {},
		func(err error) { errs <- err })

	time.Sleep(50 * time.Millisecond)
	sub.Close()
	<-sub.Done()

	select {
	case err := <-errs:
		t.Fatalf("close should not surface an error, got %v", err)
	default:
	}
	<-blocked
}
