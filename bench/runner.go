package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result is one scenario measurement, shaped for post-processing (each run
// appends a flat row set a plotting script can consume directly).
type Result struct {
	Scenario    string  `json:"scenario"`
	Op          Op      `json:"op"`
	Element     Element `json:"element"`
	Items       int     `json:"items"`
	Iterations  int     `json:"iterations"`
	NsPerOp     float64 `json:"ns_per_op"`
	AllocsPerOp int64   `json:"allocs_per_op"`
	BytesPerOp  int64   `json:"bytes_per_op"`
	StaysInline bool    `json:"stays_inline"`
}

// Report is a complete run, stamped so separate runs can be told apart when
// results files are collected for comparison.
type Report struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Elapsed   string    `json:"elapsed"`
	Threshold int       `json:"threshold"`
	Results   []Result  `json:"results"`
}

// Runner executes scenario configs and writes reports.
type Runner struct {
	log *zap.Logger
}

func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log}
}

// Run measures every scenario in cfg and returns the report. Scenarios are
// validated up front; nothing is measured if any is invalid.
func (r *Runner) Run(cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	started := time.Now().UTC()
	report := Report{
		RunID:     uuid.NewString(),
		StartedAt: started,
		Threshold: Threshold,
	}

	for _, s := range cfg.Scenarios {
		fn, err := workloadFor(s)
		if err != nil {
			return Report{}, err
		}

		r.log.Info("running scenario",
			zap.String("scenario", s.Name),
			zap.String("op", string(s.Op)),
			zap.String("element", string(s.Element)),
			zap.Int("items", s.Items),
		)

		br := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			fn(b)
		})
		res := Result{
			Scenario:    s.Name,
			Op:          s.Op,
			Element:     s.Element,
			Items:       s.Items,
			Iterations:  br.N,
			NsPerOp:     float64(br.T.Nanoseconds()) / float64(br.N),
			AllocsPerOp: br.AllocsPerOp(),
			BytesPerOp:  br.AllocedBytesPerOp(),
			StaysInline: s.Items <= Threshold,
		}
		report.Results = append(report.Results, res)

		r.log.Debug("scenario done",
			zap.String("scenario", s.Name),
			zap.Float64("ns_per_op", res.NsPerOp),
			zap.Int64("allocs_per_op", res.AllocsPerOp),
		)
	}

	report.Elapsed = time.Since(started).String()
	r.log.Info("run complete",
		zap.String("run_id", report.RunID),
		zap.Int("scenarios", len(report.Results)),
		zap.String("elapsed", report.Elapsed),
	)
	return report, nil
}

// WriteFile writes the report as indented JSON.
func (rep Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("bench: encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("bench: writing report: %w", err)
	}
	return nil
}
