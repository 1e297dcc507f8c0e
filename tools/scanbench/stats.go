package main

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// opStats aggregates latencies and outcomes for one operation kind
type opStats struct {
	mu        sync.Mutex
	latencies []time.Duration
	failures  int
}

func (s *opStats) record(d time.Duration, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.latencies = append(s.latencies, d)
	} else {
		s.failures++
	}
}

func (s *opStats) report(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Printf("\n%s: %d ok, %d failed\n", name, len(s.latencies), s.failures)
	if len(s.latencies) == 0 {
		return
	}

	sorted := make([]time.Duration, len(s.latencies))
	copy(sorted, s.latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}

	fmt.Printf("  avg %v  p50 %v  p90 %v  p99 %v  max %v\n",
		(total / time.Duration(len(sorted))).Round(time.Millisecond),
		percentile(sorted, 50).Round(time.Millisecond),
		percentile(sorted, 90).Round(time.Millisecond),
		percentile(sorted, 99).Round(time.Millisecond),
		sorted[len(sorted)-1].Round(time.Millisecond))
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
