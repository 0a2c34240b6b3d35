// Package catalog holds the element data model and the embedded, immutable
// element catalog loaded once at process start. Catalog order is significant:
// it is the tie-break used by resolution.
package catalog

import (
	"fmt"
	"strings"
	"unicode"
)

// HazardLevel is the closed set of safety classifications.
type HazardLevel string

const (
	HazardLow      HazardLevel = "Low"
	HazardModerate HazardLevel = "Moderate"
	HazardHigh     HazardLevel = "High"
	HazardExtreme  HazardLevel = "Extreme"
)

// Valid reports whether h is one of the four known levels.
func (h HazardLevel) Valid() bool {
	switch h {
	case HazardLow, HazardModerate, HazardHigh, HazardExtreme:
		return true
	}
	return false
}

// History describes the discovery of an element. DiscoveryYear is free text
// because it may be an era ("Ancient times"), not a parseable number.
type History struct {
	DiscoveryYear string `json:"discoveryYear"`
	Discoverer    string `json:"discoverer"`
	DiscovererCN  string `json:"discovererCN"`
	NameOrigin    string `json:"nameOrigin"`
	NameOriginCN  string `json:"nameOriginCN"`
	Story         string `json:"story"`
	StoryCN       string `json:"storyCN"`
}

// Safety describes hazard classification and handling guidance.
type Safety struct {
	HazardLevel   HazardLevel `json:"hazardLevel"`
	MainHazard    string      `json:"mainHazard"`
	MainHazardCN  string      `json:"mainHazardCN"`
	Precautions   string      `json:"precautions"`
	PrecautionsCN string      `json:"precautionsCN"`
}

// Record is the canonical unit of element data. Every bilingual concept is a
// field pair (X / XCN); both sides are populated together or left empty
// together. Free-text numeric-ish fields (atomic mass, electronegativity,
// density, ...) stay strings because the source data carries ranges, units
// and "unknown" markers.
type Record struct {
	// Identity
	Name          string `json:"name"`
	NameCN        string `json:"nameCN"`
	Pronunciation string `json:"pronunciation"`
	Symbol        string `json:"symbol"`
	AtomicNumber  int    `json:"atomicNumber"`
	AtomicMass    string `json:"atomicMass"`
	Category      string `json:"category"`
	CategoryCN    string `json:"categoryCN"`

	// Atomic structure. ElectronsPerShell is ordered innermost-first
	// (index 0 is the K shell); visualizers grow orbit radii with the index.
	ElectronConfiguration string   `json:"electronConfiguration"`
	ElectronsPerShell     []int    `json:"electronsPerShell"`
	OxidationStates       string   `json:"oxidationStates"`
	Electronegativity     string   `json:"electronegativity"`
	IonizationEnergy      string   `json:"ionizationEnergy"`
	ElectronAffinity      string   `json:"electronAffinity"`
	AtomicRadius          string   `json:"atomicRadius"`
	Isotopes              []string `json:"isotopes"`

	// Physical properties. Temperatures are Kelvin; nil means unknown,
	// never zero.
	PhaseAtSTP   string   `json:"phaseAtSTP"`
	PhaseAtSTPCN string   `json:"phaseAtSTPCN"`
	MeltingPoint *float64 `json:"meltingPoint"`
	BoilingPoint *float64 `json:"boilingPoint"`
	Density      string   `json:"density"`
	Appearance   string   `json:"appearance"`
	AppearanceCN string   `json:"appearanceCN"`

	Description   string `json:"description"`
	DescriptionCN string `json:"descriptionCN"`

	History History `json:"history"`

	// Usage. Applications slices are index-aligned across languages.
	Applications     []string `json:"applications"`
	ApplicationsCN   []string `json:"applicationsCN"`
	BiologicalRole   string   `json:"biologicalRole"`
	BiologicalRoleCN string   `json:"biologicalRoleCN"`

	Safety Safety `json:"safety"`

	// Visuals. SpectrumColors are hex triplets; Color is the record's
	// theme color.
	SpectrumColors []string `json:"spectrumColors"`
	Color          string   `json:"color"`
}

// bilingualPair names a bilingual field pair for invariant checks.
type bilingualPair struct {
	label  string
	en, zh string
}

func (r *Record) bilingualPairs() []bilingualPair {
	return []bilingualPair{
		{"name", r.Name, r.NameCN},
		{"category", r.Category, r.CategoryCN},
		{"phaseAtSTP", r.PhaseAtSTP, r.PhaseAtSTPCN},
		{"appearance", r.Appearance, r.AppearanceCN},
		{"description", r.Description, r.DescriptionCN},
		{"biologicalRole", r.BiologicalRole, r.BiologicalRoleCN},
		{"history.discoverer", r.History.Discoverer, r.History.DiscovererCN},
		{"history.nameOrigin", r.History.NameOrigin, r.History.NameOriginCN},
		{"history.story", r.History.Story, r.History.StoryCN},
		{"safety.mainHazard", r.Safety.MainHazard, r.Safety.MainHazardCN},
		{"safety.precautions", r.Safety.Precautions, r.Safety.PrecautionsCN},
	}
}

// Validate checks the invariants every catalog record must satisfy:
// a present identity, a 1-3 letter symbol, a positive atomic number, a known
// hazard level, paired bilingual fields, aligned application lists and
// melting <= boiling when both temperatures are known.
func (r *Record) Validate() error {
	if err := r.validateIdentity(); err != nil {
		return err
	}
	if !r.Safety.HazardLevel.Valid() {
		return fmt.Errorf("record %q: hazardLevel %q not in {Low, Moderate, High, Extreme}", r.Name, r.Safety.HazardLevel)
	}
	return r.ValidateConsistency()
}

// validateIdentity enforces the minimal fields without which a record cannot
// be displayed at all.
func (r *Record) validateIdentity() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("record: missing name")
	}
	if !ValidSymbol(r.Symbol) {
		return fmt.Errorf("record %q: symbol %q must be 1-3 letters", r.Name, r.Symbol)
	}
	if r.AtomicNumber <= 0 {
		return fmt.Errorf("record %q: atomicNumber %d must be positive", r.Name, r.AtomicNumber)
	}
	return nil
}

// ValidateConsistency holds the invariants common to catalog records and
// externally-sourced records: paired bilingual fields, aligned application
// lists, ordered temperatures and non-negative shell counts. It does not
// require any optional field to be present.
func (r *Record) ValidateConsistency() error {
	for _, p := range r.bilingualPairs() {
		if (p.en == "") != (p.zh == "") {
			return fmt.Errorf("record %q: bilingual field %s populated in one language only", r.Name, p.label)
		}
	}
	if len(r.Applications) != len(r.ApplicationsCN) {
		return fmt.Errorf("record %q: applications lists misaligned (%d vs %d)", r.Name, len(r.Applications), len(r.ApplicationsCN))
	}
	if r.MeltingPoint != nil && r.BoilingPoint != nil && *r.MeltingPoint > *r.BoilingPoint {
		return fmt.Errorf("record %q: meltingPoint %.2fK above boilingPoint %.2fK", r.Name, *r.MeltingPoint, *r.BoilingPoint)
	}
	for _, n := range r.ElectronsPerShell {
		if n < 0 {
			return fmt.Errorf("record %q: negative electron count in shell sequence", r.Name)
		}
	}
	return nil
}

// ValidSymbol reports whether s is a well-formed element symbol: one to
// three ASCII letters.
func ValidSymbol(s string) bool {
	if len(s) < 1 || len(s) > 3 {
		return false
	}
	for _, ch := range s {
		if !unicode.IsLetter(ch) || ch > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// ShellElectronSum returns the total electron count across all shells.
func (r *Record) ShellElectronSum() int {
	sum := 0
	for _, n := range r.ElectronsPerShell {
		sum += n
	}
	return sum
}
