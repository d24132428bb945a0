package analyzer

import (
	"context"
	"runtime"

	"github.com/sartorproj/tabstat/dataset"
	"github.com/sartorproj/tabstat/stats"
	"golang.org/x/sync/errgroup"
)

// ColumnSummary is the descriptive summary of one column.
type ColumnSummary struct {
	Column  string                  `json:"column"`
	Stats   *stats.DescriptiveStats `json:"stats,omitempty"`
	Dropped int                     `json:"dropped"`
	Missing int                     `json:"missing"`

	// Err is set by DescribeAll when this column could not be summarized.
	Err   error  `json:"-"`
	Error string `json:"error,omitempty"`
}

// Describe summarizes the numeric cells of one column.
func (a *Analyzer) Describe(t *dataset.Table, column string) (*ColumnSummary, error) {
	ex, err := dataset.Extract(t, column)
	if err != nil {
		a.log.Warningf("describe %q: %v", column, err)
		return nil, err
	}
	return a.describe(ex)
}

func (a *Analyzer) describe(ex *dataset.Extraction) (*ColumnSummary, error) {
	if ex.Degraded() {
		a.log.Infof("column %q: %d non-numeric and %d empty cells skipped", ex.Column, ex.Dropped, ex.Missing)
	}

	key := newFingerprint("describe").floats(ex.Values).sum()
	v, err := a.memo(key, func() (interface{}, error) {
		return stats.Summarize(ex.Values)
	})
	if err != nil {
		a.log.Warningf("describe %q: %v", ex.Column, err)
		return nil, err
	}

	summary := *v.(*stats.DescriptiveStats)
	return &ColumnSummary{
		Column:  ex.Column,
		Stats:   &summary,
		Dropped: ex.Dropped,
		Missing: ex.Missing,
	}, nil
}

// DescribeAll summarizes every column of the table in parallel. A column
// that fails carries its error in Err and does not affect the others; the
// returned error is only set when ctx is cancelled.
func (a *Analyzer) DescribeAll(ctx context.Context, t *dataset.Table) ([]*ColumnSummary, error) {
	out := make([]*ColumnSummary, len(t.Headers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, header := range t.Headers {
		i, header := i, header
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			col, err := t.Column(header)
			if err != nil {
				out[i] = &ColumnSummary{Column: header, Err: err, Error: err.Error()}
				return nil
			}
			ex := dataset.ExtractColumn(col)
			summary, err := a.describe(ex)
			if err != nil {
				out[i] = &ColumnSummary{
					Column:  header,
					Dropped: ex.Dropped,
					Missing: ex.Missing,
					Err:     err,
					Error:   err.Error(),
				}
				return nil
			}
			out[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.log.Noticef("summarized %d columns", len(out))
	return out, nil
}
