package download

import (
	"fmt"
	"sync/atomic"

	"github.com/handiism/zvuk-downloader/internal/resolve"
)

// Task is one link's download in flight. Leaf goroutines bump the
// counters through atomics; Title is set once metadata is known.
type Task struct {
	Link string
	Ref  resolve.ResourceRef

	Title string

	index   int
	files   int32
	skipped int32
	bytes   int64
}

func (t *Task) outcome(err error) Outcome {
	return Outcome{
		Link:    t.Link,
		Kind:    t.Ref.Kind.String(),
		ID:      t.Ref.ID,
		Title:   t.Title,
		Files:   int(atomic.LoadInt32(&t.files)),
		Skipped: int(atomic.LoadInt32(&t.skipped)),
		Bytes:   atomic.LoadInt64(&t.bytes),
		Err:     err,
	}
}

// Outcome is the final result of one input link.
//
// Kind and ID are empty when the link never resolved. Files counts
// everything written for the link, including cover and playlist files;
// Skipped counts files that already existed from an earlier run.
type Outcome struct {
	Link    string
	Kind    string
	ID      string
	Title   string
	Files   int
	Skipped int
	Bytes   int64
	Err     error
}

// Summary aggregates per-link outcomes, in input order.
type Summary struct {
	Outcomes []Outcome
}

// Failed returns the outcomes that ended in an error.
func (s *Summary) Failed() []Outcome {
	var failed []Outcome
	for _, o := range s.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// TotalFiles returns the number of files written across all links.
func (s *Summary) TotalFiles() int {
	n := 0
	for _, o := range s.Outcomes {
		n += o.Files
	}
	return n
}

// TotalSkipped returns the number of files left alone because an
// earlier run already wrote them.
func (s *Summary) TotalSkipped() int {
	n := 0
	for _, o := range s.Outcomes {
		n += o.Skipped
	}
	return n
}

// TotalBytes returns the number of audio bytes written across all links.
func (s *Summary) TotalBytes() int64 {
	var n int64
	for _, o := range s.Outcomes {
		n += o.Bytes
	}
	return n
}

// Err returns nil when every link succeeded, otherwise an error naming
// the failure count.
func (s *Summary) Err() error {
	failed := len(s.Failed())
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d links failed", failed, len(s.Outcomes))
}
