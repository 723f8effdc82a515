// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
)

// =============================================================================
// SSE READER
// =============================================================================

// SSEReader parses Server-Sent Events from a stream.
//
// The wire format is blank-line delimited events; within an event, the
// payloads of "data:" lines are concatenated. Other fields (event:, id:,
// retry:, comments) are ignored.
type SSEReader struct {
	reader *bufio.Reader
}

// NewSSEReader creates a new SSE reader from an io.Reader.
func NewSSEReader(r io.Reader) *SSEReader {
	return &SSEReader{reader: bufio.NewReader(r)}
}

// ReadEvent reads the next event's data payload. Returns io.EOF when the
// stream ends; a trailing event without a final blank line is still
// delivered before EOF.
func (s *SSEReader) ReadEvent() ([]byte, error) {
	var dataLines [][]byte

	for {
		line, err := s.reader.ReadBytes('\n')
		line = bytes.TrimRight(line, "\r\n")
		if err != nil {
			// ReadBytes hands back a partial final line alongside EOF.
			if bytes.HasPrefix(line, []byte("data:")) {
				dataLines = append(dataLines, bytes.TrimSpace(line[5:]))
			}
			if err == io.EOF && len(dataLines) > 0 {
				return bytes.Join(dataLines, []byte("\n")), nil
			}
			return nil, err
		}

		// Empty line signals end of event.
		if len(line) == 0 {
			if len(dataLines) > 0 {
				return bytes.Join(dataLines, []byte("\n")), nil
			}
			continue
		}

		if bytes.HasPrefix(line, []byte("data:")) {
			dataLines = append(dataLines, bytes.TrimSpace(line[5:]))
		}
	}
}

// =============================================================================
// SUBSCRIPTION
// =============================================================================

// FrameFunc receives one decodable frame payload per SSE event.
type FrameFunc func(data json.RawMessage)

// StreamErrFunc receives the terminal error of a subscription.
type StreamErrFunc func(err error)

// Subscription is an opaque handle to an open SSE stream. Close is
// idempotent and cancels the underlying connection; callers re-subscribe
// when their view reopens (no auto-reconnect).
type Subscription struct {
	cancel    context.CancelFunc
	closeOnce sync.Once
	done      chan struct{}
}

// Close cancels the subscription. Safe to call multiple times.
func (s *Subscription) Close() {
	s.closeOnce.Do(s.cancel)
}

// Done is closed when the consuming goroutine has exited.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Stream opens an SSE connection to a path under the API base and delivers
// frames to onFrame. Malformed JSON payloads are dropped silently (forward
// compatibility with unknown frame types). Connection-level failures go to
// onErr; cancellation via Close does not.
func (c *Client) Stream(ctx context.Context, path string, onFrame FrameFunc, onErr StreamErrFunc) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(sub.done)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(path), nil)
		if err != nil {
			onErr(&Error{Kind: KindNetwork, Message: "failed to create stream request", Err: err})
			return
		}
		req.Header.Set("Accept", "text/event-stream")
		req.Header.Set("Cache-Control", "no-cache")

		resp, err := c.streamClient.Do(req)
		if err != nil {
			if ctx.Err() == nil {
				onErr(wrapTransportError(err))
			}
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			raw, _ := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
			var eb errorBody
			if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
				onErr(newStatusError(resp.StatusCode, eb.Error))
			} else {
				onErr(newStatusError(resp.StatusCode, ""))
			}
			return
		}

		consumeSSE(ctx, resp.Body, onFrame, onErr)
	}()

	return sub
}

// consumeSSE reads events until EOF, context cancellation, or a transport
// failure. Shared by GET subscriptions and the chat POST stream.
func consumeSSE(ctx context.Context, body io.Reader, onFrame FrameFunc, onErr StreamErrFunc) {
	reader := NewSSEReader(body)
	for {
		data, err := reader.ReadEvent()
		if err != nil {
			if err == io.EOF || ctx.Err() != nil {
				return
			}
			onErr(&Error{Kind: KindStreamProtocol, Message: "stream read failed", Err: err})
			return
		}
		if !json.Valid(data) {
			// Skip malformed frames.
			continue
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
		onFrame(json.RawMessage(data))
	}
}

// PostStream issues a POST whose response body is an SSE stream, delivering
// frames to onFrame until the stream ends. Unlike Stream this call blocks;
// cancel via the context. Used by the AI chat endpoint.
func (c *Client) PostStream(ctx context.Context, path string, reqBody any, onFrame FrameFunc) error {
	encoded, err := json.Marshal(reqBody)
	if err != nil {
		return &Error{Kind: KindParse, Message: "failed to encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(path), bytes.NewReader(encoded))
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "failed to create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.streamClient.Do(req)
	if err != nil {
		return wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
			return newStatusError(resp.StatusCode, eb.Error)
		}
		return newStatusError(resp.StatusCode, "")
	}

	var streamErr error
	consumeSSE(ctx, resp.Body, onFrame, func(err error) { streamErr = err })
	if streamErr != nil {
		return streamErr
	}
	if ctx.Err() != nil {
		return &Error{Kind: KindCancelled, Message: "stream cancelled", Err: ctx.Err()}
	}
	return nil
}
