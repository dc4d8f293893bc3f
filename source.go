package kinemetric

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	bodypose "github.com/movewise/kinemetric/body_pose"
)

// PoseSource is the boundary with the pose-detection collaborator: one
// complete landmark frame per call, in timestamp order. Next returns
// io.EOF when the stream ends.
type PoseSource interface {
	Next(ctx context.Context) (*bodypose.Frame, error)
}

// ReplaySource reads recorded frames from a JSON-lines file, one frame
// object per line. It lets the CLI and tests drive the pipeline exactly as
// a live detector would.
type ReplaySource struct {
	f       *os.File
	scanner *bufio.Scanner
	line    int
}

// NewReplaySource opens a JSON-lines frame recording.
func NewReplaySource(path string) (*ReplaySource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening frame recording: %w", err)
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	return &ReplaySource{f: f, scanner: scanner}, nil
}

// Next returns the next recorded frame, skipping blank lines. A malformed
// line is an error naming the line number; end of file is io.EOF.
func (r *ReplaySource) Next(ctx context.Context) (*bodypose.Frame, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading frame recording: %w", err)
			}
			return nil, io.EOF
		}
		r.line++

		data := r.scanner.Bytes()
		if len(data) == 0 {
			continue
		}

		var frame bodypose.Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			return nil, fmt.Errorf("parsing frame on line %d: %w", r.line, err)
		}
		return &frame, nil
	}
}

// Close releases the underlying file.
func (r *ReplaySource) Close() error {
	return r.f.Close()
}

// SliceSource serves frames from memory; the zero source is empty. Used by
// tests and by hosts that already hold a capture in memory.
type SliceSource struct {
	Frames []bodypose.Frame
	next   int
}

// Next returns the next in-memory frame, or io.EOF when drained.
func (s *SliceSource) Next(ctx context.Context) (*bodypose.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.next >= len(s.Frames) {
		return nil, io.EOF
	}
	frame := &s.Frames[s.next]
	s.next++
	return frame, nil
}
