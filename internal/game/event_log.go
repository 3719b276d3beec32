package game

import (
	"fmt"
	"strings"
)

// Event categories.
const (
	CategoryStance = "stance"
	CategoryCombat = "combat"
	CategoryMove   = "move"
)

// EventEntry is one notable thing that happened during a tick.
type EventEntry struct {
	Tick     uint64
	Subject  string // "P" for the player, "Z3" for zombie 3, "--" for global
	Category string
	Key      string
	Value    string
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] Z3   stance    aggro            Walking -> Running
func (e EventEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-4s %-9s %-16s %s", e.Tick, e.Subject, e.Category, e.Key, e.Value)
}

// EventLog is a bounded ring of recent events. The oldest entries are
// overwritten once capacity is reached.
type EventLog struct {
	entries []EventEntry
	next    int
	full    bool
	total   int
}

func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = 256
	}
	return &EventLog{entries: make([]EventEntry, capacity)}
}

// Add records a new entry.
func (el *EventLog) Add(tick uint64, subject, category, key, value string) {
	el.entries[el.next] = EventEntry{
		Tick:     tick,
		Subject:  subject,
		Category: category,
		Key:      key,
		Value:    value,
	}
	el.next = (el.next + 1) % len(el.entries)
	if el.next == 0 {
		el.full = true
	}
	el.total++
}

// Entries returns the retained entries, oldest first.
func (el *EventLog) Entries() []EventEntry {
	if !el.full {
		return append([]EventEntry(nil), el.entries[:el.next]...)
	}
	out := make([]EventEntry, 0, len(el.entries))
	out = append(out, el.entries[el.next:]...)
	return append(out, el.entries[:el.next]...)
}

// Tail returns at most n of the newest entries, oldest first.
func (el *EventLog) Tail(n int) []EventEntry {
	all := el.Entries()
	if n >= len(all) {
		return all
	}
	return all[len(all)-n:]
}

// Total counts every entry ever added, including overwritten ones.
func (el *EventLog) Total() int {
	return el.total
}

// Filter returns retained entries matching category and key. Empty strings
// match anything.
func (el *EventLog) Filter(category, key string) []EventEntry {
	var out []EventEntry
	for _, e := range el.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Format returns the retained log, one entry per line.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.Entries() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
