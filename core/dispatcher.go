// Package core: the Dispatcher. One instance owns every engine, the
// metrics object and the logger; construction is the only mutation it
// ever sees, so a single Dispatcher serves concurrent callers.
package core

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phantompay1/EVA/matrix"
	"github.com/phantompay1/EVA/numeric"
	"github.com/phantompay1/EVA/optimize"
	"github.com/phantompay1/EVA/signal"
	"github.com/phantompay1/EVA/vision"
)

// Dispatcher-level option defaults, used when a request omits the
// corresponding options key.
const (
	// DefaultCutoff is the normalized filter cutoff frequency.
	DefaultCutoff = 0.1

	// DefaultDenoiseThreshold is the spectral soft-threshold magnitude.
	DefaultDenoiseThreshold = 0.1

	// DefaultResampleFactor leaves the signal length unchanged.
	DefaultResampleFactor = 1.0

	// DefaultBlurSigma is the Gaussian standard deviation in pixels.
	DefaultBlurSigma = 1.0
)

// Dispatcher routes ProcessingRequests to the owned engines.
type Dispatcher struct {
	matrix   *matrix.Engine
	signal   *signal.Engine
	vision   *vision.Engine
	optimize *optimize.Engine
	metrics  *Metrics
	log      *zap.Logger
	started  time.Time
}

// Option mutates Dispatcher configuration at construction time.
type Option func(*config)

type config struct {
	log     *zap.Logger
	workers int
	seed    int64
}

// WithLogger installs a structured logger. The default is a no-op
// logger; library embedders opt in explicitly.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithWorkers caps the goroutine fan-out of parallel matrix operations.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithSeed fixes the seed of stochastic optimization runs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// New constructs a fully initialized Dispatcher.
func New(opts ...Option) *Dispatcher {
	cfg := config{
		log:  zap.NewNop(),
		seed: optimize.DefaultSeed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	matrixOpts := []matrix.Option{}
	if cfg.workers > 0 {
		matrixOpts = append(matrixOpts, matrix.WithWorkers(cfg.workers))
	}
	me := matrix.NewEngine(matrixOpts...)

	return &Dispatcher{
		matrix:   me,
		signal:   signal.NewEngine(),
		vision:   vision.NewEngine(),
		optimize: optimize.NewEngine(optimize.WithSeed(cfg.seed)),
		metrics:  NewMetrics(me.Workers()),
		log:      cfg.log,
		started:  time.Now(),
	}
}

// Metrics returns the dispatcher's metrics aggregate.
func (d *Dispatcher) Metrics() *Metrics { return d.metrics }

// ProcessRequest executes one request end to end: parse the method,
// route, execute, serialize. It never panics on user input and never
// returns an error; failures become success=false responses. Timing
// covers the whole dispatch, including parse and serialize, and is
// recorded in the metrics exactly once whether the call succeeds or
// fails.
func (d *Dispatcher) ProcessRequest(req ProcessingRequest) ProcessingResponse {
	start := time.Now()

	id := req.RequestID
	if id == "" {
		id = uuid.NewString()
	}

	method, perr := ParseMethod(req.Method)
	result, err := "", perr
	if perr == nil {
		result, err = d.execute(method, req)
	}

	elapsed := time.Since(start)
	d.metrics.Observe(method.EngineLabel(), elapsed.Seconds(), err == nil)

	resp := ProcessingResponse{
		RequestID: id,
		Success:   err == nil,
		Metadata: map[string]string{
			MetaProcessingTime: strconv.FormatFloat(float64(elapsed)/float64(time.Millisecond), 'f', 6, 64),
			MetaLanguage:       LanguageTag,
		},
	}
	switch {
	case perr != nil:
		// Keep the historical wording verbatim; clients match on it.
		resp.Error = "Unknown method: " + req.Method
	case err != nil:
		resp.Error = err.Error()
	default:
		resp.Result = result
	}

	d.log.Debug("request processed",
		zap.String("method", req.Method),
		zap.String("request_id", id),
		zap.Duration("elapsed", elapsed),
		zap.Bool("success", resp.Success),
	)

	return resp
}

// execute routes a parsed method to its engine handler.
func (d *Dispatcher) execute(m Method, req ProcessingRequest) (string, error) {
	switch {
	case m >= MatrixMultiply && m <= MatrixSVD:
		return d.execMatrix(m, req)
	case m >= SignalFFT && m <= SignalSNR:
		return d.execSignal(m, req)
	case m >= VisionGaussianBlur && m <= VisionSimilarity:
		return d.execVision(m, req)
	case m >= OptimizeGradientDescent && m <= OptimizeIntegrateSimpson:
		return d.execOptimize(m, req)
	case m == HealthCheck:
		return marshalResult(d.HealthCheck())
	case m == GetCapabilities:
		return marshalResult(capabilitiesResult{Capabilities: d.Capabilities()})
	default:
		return "", ErrUnknownMethod
	}
}

// optFloat parses a float option, returning def when the key is absent.
func optFloat(opts map[string]string, key string, def float64) (float64, error) {
	raw, ok := opts[key]
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("option %q=%q: %w", key, raw, numeric.ErrInvalidParameter)
	}

	return v, nil
}

// optInt parses an integer option, returning def when the key is absent.
func optInt(opts map[string]string, key string, def int) (int, error) {
	raw, ok := opts[key]
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("option %q=%q: %w", key, raw, numeric.ErrInvalidParameter)
	}

	return v, nil
}

// optString reads a string option with a default.
func optString(opts map[string]string, key, def string) string {
	if raw, ok := opts[key]; ok {
		return raw
	}

	return def
}
