package analyzer

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
	"github.com/op/go-logging"
	"github.com/sartorproj/tabstat"
	"github.com/sartorproj/tabstat/distribution"
	"github.com/sartorproj/tabstat/logger"
	"github.com/sartorproj/tabstat/timeseries"
)

// ScalarPrecision is the number of decimal places kept in time-series
// scalars such as MAE and MSE.
const ScalarPrecision = 4

// Options configures an Analyzer.
type Options struct {
	Window    int     // Moving average window (default: 5)
	Horizon   int     // Forecast steps (default: 12)
	MaxLag    int     // Highest autocorrelation lag (default: 20)
	Threshold float64 // Stationarity threshold on the split-half means (default: 0.01)
	CacheSize int     // Memoized results, 0 disables the cache (default: 256)

	Distribution *distribution.Config
}

// DefaultOptions returns the default analysis options.
func DefaultOptions() *Options {
	return &Options{
		Window:       timeseries.DefaultWindow,
		Horizon:      timeseries.DefaultHorizon,
		MaxLag:       timeseries.DefaultMaxLag,
		Threshold:    timeseries.DefaultThreshold,
		CacheSize:    256,
		Distribution: distribution.DefaultConfig(),
	}
}

// Validate checks the options.
func (o *Options) Validate() error {
	switch {
	case o.Window < 1:
		return fmt.Errorf("%w: window must be at least 1, got %d", tabstat.ErrInvalidParameter, o.Window)
	case o.Horizon < 0:
		return fmt.Errorf("%w: horizon must not be negative, got %d", tabstat.ErrInvalidParameter, o.Horizon)
	case o.MaxLag < 1:
		return fmt.Errorf("%w: max lag must be at least 1, got %d", tabstat.ErrInvalidParameter, o.MaxLag)
	case !(o.Threshold > 0):
		return fmt.Errorf("%w: threshold must be positive, got %g", tabstat.ErrInvalidParameter, o.Threshold)
	case o.CacheSize < 0:
		return fmt.Errorf("%w: cache size must not be negative, got %d", tabstat.ErrInvalidParameter, o.CacheSize)
	}
	if o.Distribution == nil {
		return nil
	}
	return o.Distribution.Validate()
}

// Analyzer answers explicit analysis requests over a table. Every
// request carries its full selection; the only state kept between
// requests is a memo of finished results, keyed by the input values,
// the operation and its parameters.
type Analyzer struct {
	opts  *Options
	log   logger.Logger
	cache *lru.Cache
}

// New creates an Analyzer. A nil opts uses DefaultOptions and a nil log
// the process-wide "analyzer" logger.
func New(opts *Options, log logger.Logger) (*Analyzer, error) {
	if log == nil {
		log = logging.MustGetLogger("analyzer")
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Distribution == nil {
		opts.Distribution = distribution.DefaultConfig()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	a := &Analyzer{opts: opts, log: log}
	if opts.CacheSize > 0 {
		cache, err := lru.New(opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("cannot create result cache; %v", err)
		}
		a.cache = cache
	}
	return a, nil
}

// Options returns the options the analyzer was created with.
func (a *Analyzer) Options() *Options {
	return a.opts
}

// memo returns the cached result for key or computes and stores it.
// Failures are not cached.
func (a *Analyzer) memo(key uint64, compute func() (interface{}, error)) (interface{}, error) {
	if a.cache != nil {
		if v, ok := a.cache.Get(key); ok {
			a.log.Debugf("cache hit %016x", key)
			return v, nil
		}
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	if a.cache != nil {
		a.cache.Add(key, v)
	}
	return v, nil
}

// fingerprint hashes an operation name, its parameters and its input.
type fingerprint struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newFingerprint(op string) *fingerprint {
	f := &fingerprint{d: xxhash.New()}
	f.str(op)
	return f
}

func (f *fingerprint) str(s string) *fingerprint {
	f.int(len(s))
	_, _ = f.d.WriteString(s)
	return f
}

func (f *fingerprint) int(v int) *fingerprint {
	binary.LittleEndian.PutUint64(f.buf[:], uint64(v))
	_, _ = f.d.Write(f.buf[:])
	return f
}

func (f *fingerprint) float(v float64) *fingerprint {
	binary.LittleEndian.PutUint64(f.buf[:], math.Float64bits(v))
	_, _ = f.d.Write(f.buf[:])
	return f
}

func (f *fingerprint) floats(values []float64) *fingerprint {
	f.int(len(values))
	for _, v := range values {
		f.float(v)
	}
	return f
}

func (f *fingerprint) strs(values []string) *fingerprint {
	f.int(len(values))
	for _, s := range values {
		f.str(s)
	}
	return f
}

func (f *fingerprint) sum() uint64 {
	return f.d.Sum64()
}
