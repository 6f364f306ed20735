package loadgen

import (
	"io"
	"math"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Summary is the latency profile of one target. Latency fields only cover
// successful requests.
type Summary struct {
	Target   string
	Requests int
	Errors   int
	Min      time.Duration
	Mean     time.Duration
	P50      time.Duration
	P95      time.Duration
	Max      time.Duration
}

// Stats collects Results from concurrent workers.
type Stats struct {
	mu       sync.Mutex
	byTarget map[string]*targetStats
}

type targetStats struct {
	latencies []time.Duration
	errors    int
}

func NewStats() *Stats {
	return &Stats{byTarget: make(map[string]*targetStats)}
}

// Record adds one result. Safe for concurrent use.
func (s *Stats) Record(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, ok := s.byTarget[r.Target]
	if !ok {
		ts = &targetStats{}
		s.byTarget[r.Target] = ts
	}
	if r.Err != nil {
		ts.errors++
		return
	}
	ts.latencies = append(ts.latencies, r.Latency)
}

// Summaries returns one Summary per target, ordered by target.
func (s *Stats) Summaries() []Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Summary, 0, len(s.byTarget))
	for target, ts := range s.byTarget {
		out = append(out, summarize(target, ts))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Target < out[j].Target })
	return out
}

func summarize(target string, ts *targetStats) Summary {
	sum := Summary{
		Target:   target,
		Requests: len(ts.latencies) + ts.errors,
		Errors:   ts.errors,
	}
	if len(ts.latencies) == 0 {
		return sum
	}

	sorted := slices.Clone(ts.latencies)
	slices.Sort(sorted)

	var total time.Duration
	for _, l := range sorted {
		total += l
	}

	sum.Min = sorted[0]
	sum.Max = sorted[len(sorted)-1]
	sum.Mean = total / time.Duration(len(sorted))
	sum.P50 = percentile(sorted, 0.50)
	sum.P95 = percentile(sorted, 0.95)
	return sum
}

// percentile uses the nearest-rank method on an ascending slice.
func percentile(sorted []time.Duration, p float64) time.Duration {
	rank := int(math.Ceil(p*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	return sorted[rank]
}

// Render writes the summaries as a table.
func (s *Stats) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Target", "Requests", "Errors", "Min", "Mean", "P50", "P95", "Max"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})

	for _, sum := range s.Summaries() {
		t.AppendRow(table.Row{
			sum.Target,
			sum.Requests,
			sum.Errors,
			formatLatency(sum.Min),
			formatLatency(sum.Mean),
			formatLatency(sum.P50),
			formatLatency(sum.P95),
			formatLatency(sum.Max),
		})
	}
	t.Render()
}

func formatLatency(d time.Duration) string {
	return d.Round(100 * time.Microsecond).String()
}
