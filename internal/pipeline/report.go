package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

type UnitStatus string

const (
	StatusEnhanced UnitStatus = "enhanced"
	StatusCopied   UnitStatus = "copied"
	StatusFailed   UnitStatus = "failed"
	StatusTimeout  UnitStatus = "timeout"
)

// UnitResult records the outcome of one module's run.
type UnitResult struct {
	Module     string     `json:"module"`
	Status     UnitStatus `json:"status"`
	Classes    int        `json:"classes"`
	DurationMS int64      `json:"duration_ms"`
	Error      string     `json:"error,omitempty"`
}

type ReportSummary struct {
	Total       int     `json:"total"`
	Enhanced    int     `json:"enhanced"`
	Copied      int     `json:"copied"`
	Failed      int     `json:"failed"`
	Timeout     int     `json:"timeout"`
	SuccessRate float64 `json:"success_rate"`
	DurationMS  int64   `json:"duration_ms"`
}

// Report aggregates per-unit outcomes across one batch run. Add is safe to
// call from concurrent workers.
type Report struct {
	mu sync.Mutex

	GeneratedAt string        `json:"generated_at"`
	Units       []UnitResult  `json:"units"`
	Summary     ReportSummary `json:"summary"`

	started time.Time
}

func NewReport() *Report {
	return &Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		started:     time.Now(),
	}
}

func (r *Report) Add(res UnitResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Units = append(r.Units, res)
}

// Finalize computes the summary and puts units in module order.
func (r *Report) Finalize() {
	r.mu.Lock()
	defer r.mu.Unlock()

	sort.Slice(r.Units, func(i, j int) bool { return r.Units[i].Module < r.Units[j].Module })

	s := ReportSummary{Total: len(r.Units), DurationMS: time.Since(r.started).Milliseconds()}
	for _, u := range r.Units {
		switch u.Status {
		case StatusEnhanced:
			s.Enhanced++
		case StatusCopied:
			s.Copied++
		case StatusFailed:
			s.Failed++
		case StatusTimeout:
			s.Timeout++
		}
	}
	if s.Total > 0 {
		s.SuccessRate = float64(s.Enhanced+s.Copied) / float64(s.Total)
	}
	r.Summary = s
}

// Save writes the report as JSON.
func (r *Report) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0644)
}

// PrintSummary writes the console summary.
func (r *Report) PrintSummary() {
	s := r.Summary
	fmt.Printf("\n📊 Batch summary: %d modules in %s\n", s.Total, (time.Duration(s.DurationMS) * time.Millisecond).Round(time.Millisecond))
	fmt.Printf("   ✅ enhanced: %d   📋 copied: %d   ❌ failed: %d   ⏱️ timeout: %d\n",
		s.Enhanced, s.Copied, s.Failed, s.Timeout)
	fmt.Printf("   Success rate: %.1f%%\n", s.SuccessRate*100)

	if fastest, slowest, ok := r.extremes(); ok {
		fmt.Printf("   Fastest: %s (%dms)   Slowest: %s (%dms)\n",
			fastest.Module, fastest.DurationMS, slowest.Module, slowest.DurationMS)
	}
}

func (r *Report) extremes() (fastest, slowest UnitResult, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Units) == 0 {
		return fastest, slowest, false
	}
	fastest, slowest = r.Units[0], r.Units[0]
	for _, u := range r.Units[1:] {
		if u.DurationMS < fastest.DurationMS {
			fastest = u
		}
		if u.DurationMS > slowest.DurationMS {
			slowest = u
		}
	}
	return fastest, slowest, true
}
