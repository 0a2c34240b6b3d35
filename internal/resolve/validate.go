package resolve

import (
	"strings"

	"elementvision/internal/catalog"
)

// shellSlack is the headroom allowed on top of 2x the atomic number when
// sanity-checking the electron shell sum of an externally-sourced record.
// The check is a heuristic, not an equality; ionization states vary.
// Applied to upstream payloads only, never to catalog data.
const shellSlack = 8

// validateEnriched applies the shape checks an externally-sourced payload
// must pass before it is accepted as a record. Reject-on-violation, never
// coerce; looser than the catalog contract in that only name, symbol and
// atomicNumber are required, and an absent hazard level is tolerated (it
// renders as a placeholder downstream). An unknown non-empty hazard level is
// still a violation.
func validateEnriched(rec *catalog.Record) error {
	if strings.TrimSpace(rec.Name) == "" {
		return &ValidationError{Field: "name", Reason: "missing"}
	}
	if strings.TrimSpace(rec.Symbol) == "" {
		return &ValidationError{Field: "symbol", Reason: "missing"}
	}
	if !catalog.ValidSymbol(rec.Symbol) {
		return &ValidationError{Field: "symbol", Reason: "not 1-3 letters"}
	}
	if rec.AtomicNumber <= 0 {
		return &ValidationError{Field: "atomicNumber", Reason: "missing or non-positive"}
	}
	if lvl := rec.Safety.HazardLevel; lvl != "" && !lvl.Valid() {
		return &ValidationError{Field: "safety.hazardLevel", Reason: "not in closed set"}
	}
	if err := rec.ValidateConsistency(); err != nil {
		return &ValidationError{Field: "record", Reason: err.Error()}
	}
	if len(rec.ElectronsPerShell) > 0 && rec.ShellElectronSum() > 2*rec.AtomicNumber+shellSlack {
		return &ValidationError{Field: "electronsPerShell", Reason: "electron sum implausibly large for atomic number"}
	}
	return nil
}
