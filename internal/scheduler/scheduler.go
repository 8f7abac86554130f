package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"meowvie/internal/history"
)

// HistorySource is the read view of the history store the digest needs.
type HistorySource interface {
	All() map[string][]history.Entry
}

// Scheduler periodically sends the admin a one-line usage digest.
type Scheduler struct {
	cron   *cron.Cron
	source HistorySource
	send   func(text string) error
}

func New(source HistorySource, send func(text string) error) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		source: source,
		send:   send,
	}
}

func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		text := Digest(s.source, time.Now().UTC())
		if err := s.send(text); err != nil {
			log.Printf("failed to send digest: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule digest %q: %w", spec, err)
	}
	s.cron.Start()
	log.Printf("digest scheduled: %q", spec)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Digest summarizes recommendations served in the 24 hours before now.
func Digest(source HistorySource, now time.Time) string {
	since := now.Add(-24 * time.Hour)
	var served, users int
	for _, entries := range source.All() {
		n := 0
		for _, e := range entries {
			if e.Timestamp.After(since) {
				n++
			}
		}
		if n > 0 {
			users++
			served += n
		}
	}
	return fmt.Sprintf("Meowvie digest: %d recommendations served to %d users in the last 24h.", served, users)
}
