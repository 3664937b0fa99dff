// Package obralens answers free-text natural-language queries against a
// fixed set of construction-project spreadsheets.
//
// Usage:
//
//	src, _ := dataset.LoadDir("data")
//	session := obralens.NewSession(
//	    obralens.WithChart(engine.NewChartBuilder()),
//	    obralens.WithRecorder(recorder),
//	)
//	session.Initialize(src)
//	result, err := session.Answer("avance de obra en Burdeos")
//
// Interpretation is deterministic and rule-based: normalize → resolve
// project → classify intent → execute. The engine never calls any external
// service — all computation is local, and every call through Answer returns
// a well-formed result once the datasets are initialized.
package obralens

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/obralens/obralens/engine"
	"github.com/obralens/obralens/interpreter"
	"github.com/obralens/obralens/querylog"
)

// ErrNotInitialized is returned by Answer before Initialize has loaded the
// datasets. A precondition failure, not a query error.
var ErrNotInitialized = errors.New("obralens: datasets not initialized")

// Session wires the interpreter, the engine, and the query log. The loaded
// datasets and lookup structures are immutable after Initialize; Answer is
// read-only and safe to call repeatedly with identical results.
type Session struct {
	interp   *interpreter.Interpreter
	src      engine.Sources
	chart    engine.ChartBuilder
	cols     *engine.Columns
	recorder querylog.Recorder
	log      zerolog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithChart injects the optional visualization port. Without it every
// result carries a nil chart.
func WithChart(cb engine.ChartBuilder) SessionOption {
	return func(s *Session) { s.chart = cb }
}

// WithRecorder injects the query log sink. Defaults to a no-op recorder.
func WithRecorder(r querylog.Recorder) SessionOption {
	return func(s *Session) { s.recorder = r }
}

// WithLogger sets the session logger. Defaults to a disabled logger.
func WithLogger(log zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = log }
}

// WithColumns overrides the engine's default column mapping.
func WithColumns(cols engine.Columns) SessionOption {
	return func(s *Session) { s.cols = &cols }
}

// NewSession creates an uninitialized Session.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		recorder: querylog.Nop{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize binds the loaded datasets and builds the project index. It
// returns the index so callers can surface the known projects.
func (s *Session) Initialize(src engine.Sources) *interpreter.ProjectIndex {
	s.src = src
	s.interp = interpreter.New("proyecto", src)
	s.log.Info().Int("projects", s.interp.Projects().Len()).Msg("datasets initialized")
	return s.interp.Projects()
}

// Ready reports whether Initialize has run.
func (s *Session) Ready() bool { return s.interp != nil }

// Answer interprets and executes one query. Once initialized it always
// returns a well-formed result: empty result sets and unrecognized queries
// are normal variants. The query log append is best-effort — a sink failure
// is logged as a warning and never reaches the caller.
func (s *Session) Answer(query string) (*engine.Result, error) {
	if s.interp == nil {
		return nil, ErrNotInitialized
	}

	spec := s.interp.Interpret(query)
	result := engine.Execute(spec, s.src, s.engineOptions()...)

	entry := querylog.NewEntry(query, string(result.Kind), spec.Project, result.Summary)
	if err := s.recorder.Record(entry); err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("query log append failed")
	}

	s.log.Debug().
		Str("intent", string(spec.Intent)).
		Str("project", spec.Project).
		Bool("empty", result.IsEmpty()).
		Msg("query answered")

	return result, nil
}

func (s *Session) engineOptions() []engine.Option {
	var opts []engine.Option
	if s.chart != nil {
		opts = append(opts, engine.WithChartBuilder(s.chart))
	}
	if s.cols != nil {
		opts = append(opts, engine.WithColumns(*s.cols))
	}
	return opts
}
