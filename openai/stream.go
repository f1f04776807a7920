package openai

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
)

// maxEventSize bounds a single server-sent-events line.
const maxEventSize = 1 << 20

// doneMarker terminates an API event stream.
const doneMarker = "[DONE]"

// Stream decodes the server-sent events of a streaming response into T.
//
//	stream, err := c.CreateChatCompletionStream(ctx, msgs, nil)
//	if err != nil {
//	    return err
//	}
//	defer stream.Close()
//
//	for stream.Next() {
//	    chunk := stream.Current()
//	    fmt.Print(chunk.Choices[0].Delta.Content)
//	}
//	return stream.Err()
type Stream[T any] struct {
	resp    *http.Response
	scanner *bufio.Scanner
	current *T
	err     error
	done    bool
	closed  atomic.Bool
}

// NewStream wraps a streaming response. Use it on Result.Stream when the raw
// response came from CreateCompletion or CreateChatCompletion.
func NewStream[T any](resp *http.Response) *Stream[T] {
	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 0, 64*1024), maxEventSize)
	return &Stream[T]{resp: resp, scanner: sc}
}

// Next advances to the next event. It returns false at the end of the stream,
// after [DONE], after Close, or on error (see Err).
func (s *Stream[T]) Next() bool {
	if s.closed.Load() || s.err != nil || s.done {
		return false
	}

	data, err := s.nextData()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		return false
	}
	if data == doneMarker {
		s.done = true
		return false
	}

	v := new(T)
	if err := json.Unmarshal([]byte(data), v); err != nil {
		s.err = fmt.Errorf("decode event: %w", err)
		return false
	}
	s.current = v
	return true
}

// Current returns the event decoded by the last successful Next.
func (s *Stream[T]) Current() *T {
	return s.current
}

// Err returns the first read or decode error, if any.
func (s *Stream[T]) Err() error {
	return s.err
}

// Response is the underlying HTTP response.
func (s *Stream[T]) Response() *http.Response {
	return s.resp
}

// Close releases the response body. Safe to call more than once.
func (s *Stream[T]) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.resp.Body.Close()
}

// nextData returns the joined "data:" lines of the next event.
func (s *Stream[T]) nextData() (string, error) {
	var lines []string
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if line == "" {
			if len(lines) > 0 {
				return strings.Join(lines, "\n"), nil
			}
			continue
		}
		// event:, id:, retry: and ":" comments carry nothing we decode
		if rest, ok := strings.CutPrefix(line, "data:"); ok {
			lines = append(lines, strings.TrimPrefix(rest, " "))
		}
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("read stream: %w", err)
	}
	if len(lines) > 0 {
		return strings.Join(lines, "\n"), nil
	}
	return "", io.EOF
}
