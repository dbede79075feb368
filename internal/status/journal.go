package status

import (
	"context"
	"fmt"
	"time"

	"github.com/nerrad567/gray-logic-office/internal/journal"
	"github.com/nerrad567/gray-logic-office/internal/office"
)

const defaultJournalTimeout = 2 * time.Second

// JournalSink records events in a journal.Repository.
type JournalSink struct {
	repo    journal.Repository
	timeout time.Duration
}

// Journal returns a sink recording into repo. Each write is bounded by
// timeout; zero means two seconds.
func Journal(repo journal.Repository, timeout time.Duration) *JournalSink {
	if timeout <= 0 {
		timeout = defaultJournalTimeout
	}
	return &JournalSink{repo: repo, timeout: timeout}
}

// Emit records e as a journal entry stamped with the event time.
func (s *JournalSink) Emit(e office.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	entry := &journal.Entry{
		DeviceID:  e.DeviceID,
		Action:    string(e.Action),
		FileName:  e.FileName,
		Counter:   e.Counter,
		CreatedAt: e.Time,
	}
	if err := s.repo.Record(ctx, entry); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	return nil
}
