package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"elementvision/internal/catalog"
)

// Mode selects what happens when a query misses the catalog.
type Mode string

const (
	// ModeStrict fails catalog misses with ErrNotFound.
	ModeStrict Mode = "strict"
	// ModeEnriched escalates catalog misses to the external completer.
	ModeEnriched Mode = "enriched"
)

// Completer is the narrow contract to the external completion service: given
// an element name or alias, return a JSON payload in the record shape, or an
// error. A single call per resolution; retry policy below the transport level
// is not the resolver's business.
type Completer interface {
	LookupElement(ctx context.Context, name string) ([]byte, error)
}

// RecordCache stores validated enrichment results keyed by normalized query.
// Implementations are best-effort; cache errors never fail a resolution.
type RecordCache interface {
	Get(ctx context.Context, query string) (catalog.Record, bool, error)
	Put(ctx context.Context, query string, rec catalog.Record) error
}

// Config wires a Resolver.
type Config struct {
	Mode      Mode
	Completer Completer   // required in enriched mode
	Cache     RecordCache // optional, enriched results only
	Logger    *zap.Logger
}

// Resolver matches queries against an immutable catalog and, in enriched
// mode, escalates misses to an external completion service. Safe for
// concurrent use; the catalog is read-only and every resolution is
// independent, even for identical query text.
type Resolver struct {
	catalog   *catalog.Catalog
	mode      Mode
	completer Completer
	cache     RecordCache
	logger    *zap.Logger
}

// New builds a Resolver over cat. Mode defaults to strict.
func New(cat *catalog.Catalog, cfg Config) *Resolver {
	mode := cfg.Mode
	if mode == "" {
		mode = ModeStrict
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		catalog:   cat,
		mode:      mode,
		completer: cfg.Completer,
		cache:     cfg.Cache,
		logger:    logger,
	}
}

// Resolve finds the element record for a free-text query.
//
// The match rule: trim the query, then take the first catalog record whose
// English name or symbol equals it case-insensitively, or whose Chinese name
// equals it exactly. Catalog order is the tie-break. On a miss, strict mode
// returns ErrNotFound; enriched mode asks the completer and validates the
// payload before returning it. Enriched records are transient and never
// merged into the catalog.
func (r *Resolver) Resolve(ctx context.Context, query string) (catalog.Record, error) {
	requestID := uuid.NewString()
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return catalog.Record{}, ErrNotFound
	}
	lower := strings.ToLower(trimmed)

	for _, rec := range r.catalog.All() {
		if strings.ToLower(rec.Name) == lower ||
			strings.ToLower(rec.Symbol) == lower ||
			rec.NameCN == trimmed {
			r.logger.Debug("catalog hit",
				zap.String("request_id", requestID),
				zap.String("query", trimmed),
				zap.Int("atomic_number", rec.AtomicNumber))
			return rec, nil
		}
	}

	if r.mode != ModeEnriched {
		return catalog.Record{}, ErrNotFound
	}
	return r.enrich(ctx, requestID, trimmed)
}

func (r *Resolver) enrich(ctx context.Context, requestID, query string) (catalog.Record, error) {
	if r.completer == nil {
		return catalog.Record{}, &UpstreamError{Stage: "complete", Err: fmt.Errorf("no completion client configured")}
	}

	key := strings.ToLower(query)
	if r.cache != nil {
		if rec, ok, err := r.cache.Get(ctx, key); err != nil {
			r.logger.Warn("cache read failed", zap.String("request_id", requestID), zap.Error(err))
		} else if ok {
			if err := validateEnriched(&rec); err == nil {
				r.logger.Debug("cache hit", zap.String("request_id", requestID), zap.String("query", query))
				return rec, nil
			}
		}
	}

	payload, err := r.completer.LookupElement(ctx, query)
	if err != nil {
		r.logger.Debug("completion failed", zap.String("request_id", requestID), zap.Error(err))
		return catalog.Record{}, &UpstreamError{Stage: "complete", Err: err}
	}
	if len(payload) == 0 {
		return catalog.Record{}, &UpstreamError{Stage: "complete", Err: fmt.Errorf("empty response body")}
	}

	var rec catalog.Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return catalog.Record{}, &UpstreamError{Stage: "parse", Err: err}
	}
	if err := validateEnriched(&rec); err != nil {
		r.logger.Debug("upstream record rejected", zap.String("request_id", requestID), zap.Error(err))
		return catalog.Record{}, &UpstreamError{Stage: "validate", Err: err}
	}

	if r.cache != nil {
		if err := r.cache.Put(ctx, key, rec); err != nil {
			r.logger.Warn("cache write failed", zap.String("request_id", requestID), zap.Error(err))
		}
	}
	r.logger.Info("resolved via enrichment",
		zap.String("request_id", requestID),
		zap.String("query", query),
		zap.Int("atomic_number", rec.AtomicNumber))
	return rec, nil
}
