package sink

import (
	"fmt"
	"io"
	"log/slog"
)

// Policy decides what a failed write does.
type Policy int

const (
	Strict  Policy = iota // first failure is returned to the caller
	Lenient               // failure is logged and counted, output goes on
)

// Writer sends rendered or decoded groups to the output.
type Writer struct {
	w      io.Writer
	policy Policy
	log    *slog.Logger

	written  int64
	groups   int
	failures int
}

// New: constructor. A nil logger discards.
func New(w io.Writer, policy Policy, log *slog.Logger) *Writer {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{w: w, policy: policy, log: log}
}

// Emit writes the data of one group in a single call. index is only used
// for error reporting.
func (s *Writer) Emit(index int, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	s.groups++

	n, err := s.w.Write(data)
	s.written += int64(n)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err == nil {
		return nil
	}

	if s.policy == Strict {
		return fmt.Errorf("write group %d: %w", index, err)
	}

	s.failures++
	s.log.Error("write failed, continuing", "group", index, "size", len(data), "err", err)
	return nil
}

// Written: bytes that reached the underlying writer
func (s *Writer) Written() int64 { return s.written }

// Groups: number of non-empty Emit calls
func (s *Writer) Groups() int { return s.groups }

// Failures: writes that failed under the Lenient policy
func (s *Writer) Failures() int { return s.failures }
