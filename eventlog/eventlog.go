// Package eventlog keeps a bounded, timestamped list of messages for the
// on-screen log panel.
package eventlog

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const defaultCapacity = 200

type Entry struct {
	Time time.Time
	Text string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s", e.Time.Format("15:04:05.000"), e.Text)
}

type Log struct {
	mu         sync.RWMutex
	entries    []Entry
	capacity   int
	now        func() time.Time
	AutoScroll bool
}

func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	return &Log{
		entries:    make([]Entry, 0, capacity),
		capacity:   capacity,
		now:        time.Now,
		AutoScroll: true,
	}
}

// Add appends one entry per line of text, dropping the oldest entries once
// the log is full.
func (l *Log) Add(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		l.entries = append(l.entries, Entry{Time: now, Text: line})
	}

	if overflow := len(l.entries) - l.capacity; overflow > 0 {
		l.entries = append(l.entries[:0], l.entries[overflow:]...)
	}
}

func (l *Log) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Lines returns a copy of every entry, oldest first.
func (l *Log) Lines() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Filter returns the entries whose text contains substr, ignoring case.
// An empty substr matches everything.
func (l *Log) Filter(substr string) []Entry {
	if substr == "" {
		return l.Lines()
	}

	needle := strings.ToLower(substr)

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, 0)
	for _, e := range l.entries {
		if strings.Contains(strings.ToLower(e.Text), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Tail returns at most n entries matching filter. With AutoScroll on these
// are the newest ones, otherwise the oldest.
func (l *Log) Tail(n int, filter string) []Entry {
	entries := l.Filter(filter)
	if n <= 0 || len(entries) <= n {
		return entries
	}

	if l.AutoScroll {
		return entries[len(entries)-n:]
	}
	return entries[:n]
}
