package metrics

import (
	"sync"
	"time"
)

const windowSeconds = 3600

type RequestCounts struct {
	Total      int64 `json:"total"`
	LastMinute int64 `json:"last_minute"`
	LastHour   int64 `json:"last_hour"`
}

type bucket struct {
	second int64
	count  int64
}

// Window counts requests in one-second buckets over the last hour. Slots
// are reused as the clock moves, so memory stays fixed.
type Window struct {
	mu      sync.Mutex
	total   int64
	buckets [windowSeconds]bucket
}

func NewWindow() *Window {
	return &Window{}
}

func (w *Window) Record(at time.Time) {
	sec := at.Unix()
	slot := &w.buckets[slotOf(sec)]

	w.mu.Lock()
	defer w.mu.Unlock()
	w.total++
	if slot.second != sec {
		slot.second = sec
		slot.count = 0
	}
	slot.count++
}

// Counts sums the buckets younger than a minute and an hour. A bucket from
// exactly 60 seconds ago no longer counts towards the last minute.
func (w *Window) Counts(now time.Time) RequestCounts {
	sec := now.Unix()

	w.mu.Lock()
	defer w.mu.Unlock()
	out := RequestCounts{Total: w.total}
	for _, b := range w.buckets {
		if b.count == 0 {
			continue
		}
		age := sec - b.second
		if age < 0 || age >= windowSeconds {
			continue
		}
		out.LastHour += b.count
		if age < 60 {
			out.LastMinute += b.count
		}
	}
	return out
}

func slotOf(sec int64) int {
	slot := sec % windowSeconds
	if slot < 0 {
		slot += windowSeconds
	}
	return int(slot)
}
