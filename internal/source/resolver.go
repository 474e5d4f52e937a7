package source

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"movieshows/internal/config"
	"movieshows/internal/logging"
	"movieshows/internal/media"
)

// CandidateKind distinguishes how a candidate entered the resolution order.
type CandidateKind string

const (
	KindInjected     CandidateKind = "injected"
	KindOverride     CandidateKind = "override"
	KindConventional CandidateKind = "conventional"
)

// Candidate is one place a payload may be found.
type Candidate struct {
	Name     string
	Location string
	Kind     CandidateKind
}

// Outcome summarizes one attempt.
type Outcome string

const (
	OutcomeLoaded Outcome = "loaded"
	OutcomeEmpty  Outcome = "empty"
	OutcomeFailed Outcome = "failed"
)

// Attempt records what happened to a single candidate.
type Attempt struct {
	Candidate Candidate
	Outcome   Outcome
	Items     int
	Err       error
	Duration  time.Duration
}

// Result is the outcome of a resolution run. Items is empty when every
// candidate was exhausted; Source names the candidate that produced Items.
type Result struct {
	Items    []media.Item
	Source   *Candidate
	Attempts []Attempt
}

// Loaded reports whether any candidate produced items.
func (r Result) Loaded() bool {
	return r.Source != nil && len(r.Items) > 0
}

// Resolver discovers the catalog payload.
type Resolver struct {
	// Injected is a payload handed over by the host before startup. Nil when
	// nothing was injected.
	Injected any
	// InjectedName labels the injected payload in attempts and logs.
	InjectedName string
	// Override is tried once before the conventional candidates.
	Override   string
	Candidates []string
	Fetcher    Fetcher
	Logger     *slog.Logger

	injectErr error
}

// NewResolver wires a resolver from configuration. An inline payload from
// MOVIESHOWS_CONTENT wins over source.inject_path. A broken injection is kept
// as a failed first attempt rather than aborting resolution.
func NewResolver(ctx context.Context, cfg *config.Config, logger *slog.Logger) *Resolver {
	router := NewRouter(cfg)
	r := &Resolver{
		Override:   cfg.Source.Override,
		Candidates: append([]string(nil), cfg.Source.Candidates...),
		Fetcher:    router,
		Logger:     logger,
	}
	switch {
	case strings.TrimSpace(cfg.Source.InjectedJSON) != "":
		r.InjectedName = "MOVIESHOWS_CONTENT"
		payload, err := DecodeBody(r.InjectedName, []byte(cfg.Source.InjectedJSON))
		r.Injected, r.injectErr = payload, err
	case cfg.Source.InjectPath != "":
		r.InjectedName = cfg.Source.InjectPath
		payload, err := LoadInjected(ctx, router.Files, cfg.Source.InjectPath)
		r.Injected, r.injectErr = payload, err
	}
	return r
}

// Order returns the candidates Resolve would try, in order.
func (r *Resolver) Order() []Candidate {
	order := make([]Candidate, 0, len(r.Candidates)+2)
	if r.Injected != nil || r.injectErr != nil {
		name := r.InjectedName
		if name == "" {
			name = "injected"
		}
		order = append(order, Candidate{Name: name, Location: name, Kind: KindInjected})
	}
	if override := strings.TrimSpace(r.Override); override != "" {
		order = append(order, Candidate{Name: override, Location: r.locate(override), Kind: KindOverride})
	}
	for _, name := range r.Candidates {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		order = append(order, Candidate{Name: name, Location: r.locate(name), Kind: KindConventional})
	}
	return order
}

func (r *Resolver) locate(name string) string {
	if locator, ok := r.Fetcher.(interface{ Locate(string) string }); ok {
		return locator.Locate(name)
	}
	return name
}

// Resolve tries each candidate strictly in order and returns the first
// non-empty normalized result. It never returns an error: failures are logged
// and recorded in Result.Attempts, and exhaustion yields an empty result.
func (r *Resolver) Resolve(ctx context.Context) Result {
	logger := logging.NewComponentLogger(r.Logger, "source")
	var result Result

	for _, candidate := range r.Order() {
		if err := ctx.Err(); err != nil {
			logging.WarnWithContext(logger, "payload resolution cancelled", "source_resolution_cancelled",
				logging.Error(err),
				logging.String(logging.FieldImpact, "catalog stays empty"),
				logging.String(logging.FieldErrorHint, "retry the reload"),
			)
			return result
		}

		started := time.Now()
		items, err := r.load(ctx, candidate)
		attempt := Attempt{Candidate: candidate, Items: len(items), Err: err, Duration: time.Since(started)}
		attemptLogger := logging.WithContext(logging.WithLocation(ctx, candidate.Location), logger)

		switch {
		case err != nil:
			attempt.Outcome = OutcomeFailed
			logging.WarnWithContext(attemptLogger, "payload candidate failed", "source_candidate_failed",
				logging.String("candidate_kind", string(candidate.Kind)),
				logging.Error(err),
				logging.String(logging.FieldImpact, "next candidate will be tried"),
				logging.String(logging.FieldErrorHint, hintFor(err)),
			)
		case len(items) == 0:
			attempt.Outcome = OutcomeEmpty
			attemptLogger.Debug("payload candidate empty",
				logging.String("candidate_kind", string(candidate.Kind)))
		default:
			attempt.Outcome = OutcomeLoaded
		}
		result.Attempts = append(result.Attempts, attempt)

		if attempt.Outcome == OutcomeLoaded {
			chosen := candidate
			result.Items = items
			result.Source = &chosen
			attemptLogger.Info("catalog payload loaded",
				logging.String("candidate_kind", string(candidate.Kind)),
				logging.Int("items", len(items)),
				logging.Duration("duration", attempt.Duration),
			)
			return result
		}
	}

	logging.WarnWithContext(logger, "no catalog payload found", "source_exhausted",
		logging.Int("attempts", len(result.Attempts)),
		logging.String(logging.FieldImpact, "catalog is empty"),
		logging.String(logging.FieldErrorHint, "place a payload at one of the conventional locations or set source.override"),
	)
	return result
}

func (r *Resolver) load(ctx context.Context, candidate Candidate) ([]media.Item, error) {
	if candidate.Kind == KindInjected {
		if r.injectErr != nil {
			return nil, r.injectErr
		}
		return media.NormalizePayload(r.Injected), nil
	}
	if r.Fetcher == nil {
		return nil, wrap(ErrUnreachable, candidate.Location, "fetch", errors.New("no fetcher configured"))
	}
	data, err := r.Fetcher.Fetch(ctx, candidate.Name)
	if err != nil {
		return nil, err
	}
	payload, err := DecodeBody(candidate.Location, data)
	if err != nil {
		return nil, err
	}
	return media.NormalizePayload(payload), nil
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, ErrStatus):
		return "check that the file is published at this location"
	case errors.Is(err, ErrParse):
		return "validate the payload as JSON"
	case errors.Is(err, context.DeadlineExceeded):
		return "raise source.request_timeout or check the network"
	default:
		return "check the location exists and is readable"
	}
}
