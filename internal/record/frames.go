// Package record persists finished sessions: a zstd-compressed JSONL frame
// log per session and a SQLite index of outcomes.
package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// FrameWriter appends JSON lines to a zstd-compressed per-session file.
// Safe for use from one writer goroutine at a time; the mutex only guards
// against a concurrent Close.
type FrameWriter struct {
	path string

	mu     sync.Mutex
	f      *os.File
	enc    *zstd.Encoder
	w      *bufio.Writer
	closed bool
}

// NewFrameWriter creates dir/<sessionID>.jsonl.zst, creating dir if needed.
func NewFrameWriter(dir, sessionID string) (*FrameWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, sessionID+".jsonl.zst")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &FrameWriter{
		path: path,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriter(enc),
	}, nil
}

func (fw *FrameWriter) Path() string { return fw.path }

// Write appends one frame as a JSON line.
func (fw *FrameWriter) Write(v any) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.closed {
		return fmt.Errorf("frame writer closed")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fw.w.Write(b); err != nil {
		return err
	}
	return fw.w.WriteByte('\n')
}

// Close flushes and closes the underlying file. Further writes fail.
func (fw *FrameWriter) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.closed {
		return nil
	}
	fw.closed = true
	if err := fw.w.Flush(); err != nil {
		_ = fw.enc.Close()
		_ = fw.f.Close()
		return err
	}
	if err := fw.enc.Close(); err != nil {
		_ = fw.f.Close()
		return err
	}
	return fw.f.Close()
}

// ReadFrames streams every line of a frame log through each. Used by
// replay tooling and tests.
func ReadFrames(path string, each func(line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		return err
	}
	defer dec.Close()
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		if err := each(sc.Bytes()); err != nil {
			return err
		}
	}
	return sc.Err()
}
