// Package present projects bilingual element records into single-locale
// display views. Everything here is a pure function of (record, locale);
// presentation never fails and never mutates its input.
package present

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"elementvision/internal/catalog"
)

// Locale selects the display language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"
)

// DefaultLocale matches the original app's startup language.
const DefaultLocale = LocaleZH

// ParseLocale validates a locale string.
func ParseLocale(s string) (Locale, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case LocaleEN:
		return LocaleEN, nil
	case LocaleZH:
		return LocaleZH, nil
	}
	return "", fmt.Errorf("unsupported locale %q (want en or zh)", s)
}

// Toggle returns the other locale.
func (l Locale) Toggle() Locale {
	if l == LocaleZH {
		return LocaleEN
	}
	return LocaleZH
}

// DisplayHistory is the localized discovery story.
type DisplayHistory struct {
	DiscoveryYear string
	Discoverer    string
	NameOrigin    string
	Story         string
}

// DisplaySafety is the localized safety panel. HazardLevel keeps the raw
// closed-set value for styling; HazardLabel is the localized display string.
type DisplaySafety struct {
	HazardLevel catalog.HazardLevel
	HazardLabel string
	MainHazard  string
	Precautions string
}

// DisplayView is a single-language projection of a record. Non-bilingual
// fields (symbol, atomic number, numeric temperatures, colors) are identical
// across the two projections of the same record.
type DisplayView struct {
	Locale Locale

	Name          string
	OtherName     string // the name in the non-selected language
	Pronunciation string
	Symbol        string
	AtomicNumber  int
	AtomicMass    string
	Category      string

	ElectronConfiguration string
	ElectronsPerShell     []int
	OxidationStates       string
	Electronegativity     string
	IonizationEnergy      string
	ElectronAffinity      string
	AtomicRadius          string
	Isotopes              []string

	Phase        string
	MeltingPoint *float64
	BoilingPoint *float64
	Melting      string // formatted Kelvin/Celsius pair
	Boiling      string
	Density      string
	Appearance   string

	Description    string
	History        DisplayHistory
	Applications   []string
	BiologicalRole string
	Safety         DisplaySafety

	SpectrumColors []string
	Color          string
}

// Project maps a record to its view in the given locale. For every bilingual
// pair the CN variant is selected under zh and the base variant otherwise;
// everything else passes through unchanged.
func Project(rec catalog.Record, locale Locale) DisplayView {
	pick := func(en, zh string) string {
		if locale == LocaleZH {
			return zh
		}
		return en
	}
	pickList := func(en, zh []string) []string {
		if locale == LocaleZH {
			return zh
		}
		return en
	}

	return DisplayView{
		Locale: locale,

		Name:          pick(rec.Name, rec.NameCN),
		OtherName:     pick(rec.NameCN, rec.Name),
		Pronunciation: rec.Pronunciation,
		Symbol:        rec.Symbol,
		AtomicNumber:  rec.AtomicNumber,
		AtomicMass:    rec.AtomicMass,
		Category:      pick(rec.Category, rec.CategoryCN),

		ElectronConfiguration: rec.ElectronConfiguration,
		ElectronsPerShell:     rec.ElectronsPerShell,
		OxidationStates:       rec.OxidationStates,
		Electronegativity:     rec.Electronegativity,
		IonizationEnergy:      rec.IonizationEnergy,
		ElectronAffinity:      rec.ElectronAffinity,
		AtomicRadius:          rec.AtomicRadius,
		Isotopes:              rec.Isotopes,

		Phase:        pick(rec.PhaseAtSTP, rec.PhaseAtSTPCN),
		MeltingPoint: rec.MeltingPoint,
		BoilingPoint: rec.BoilingPoint,
		Melting:      FormatTemp(rec.MeltingPoint, locale),
		Boiling:      FormatTemp(rec.BoilingPoint, locale),
		Density:      rec.Density,
		Appearance:   pick(rec.Appearance, rec.AppearanceCN),

		Description: pick(rec.Description, rec.DescriptionCN),
		History: DisplayHistory{
			DiscoveryYear: rec.History.DiscoveryYear,
			Discoverer:    pick(rec.History.Discoverer, rec.History.DiscovererCN),
			NameOrigin:    pick(rec.History.NameOrigin, rec.History.NameOriginCN),
			Story:         pick(rec.History.Story, rec.History.StoryCN),
		},
		Applications:   pickList(rec.Applications, rec.ApplicationsCN),
		BiologicalRole: pick(rec.BiologicalRole, rec.BiologicalRoleCN),
		Safety: DisplaySafety{
			HazardLevel: rec.Safety.HazardLevel,
			HazardLabel: HazardLabel(rec.Safety.HazardLevel, locale),
			MainHazard:  pick(rec.Safety.MainHazard, rec.Safety.MainHazardCN),
			Precautions: pick(rec.Safety.Precautions, rec.Safety.PrecautionsCN),
		},

		SpectrumColors: rec.SpectrumColors,
		Color:          rec.Color,
	}
}

// TempPlaceholder renders an unknown temperature.
const TempPlaceholder = "—"

// FormatTemp renders a Kelvin value as a Kelvin-and-Celsius pair, Celsius
// rounded to 2 decimal places. nil renders as the placeholder, never "0" or
// "NaN".
func FormatTemp(k *float64, _ Locale) string {
	if k == nil {
		return TempPlaceholder
	}
	kelvin := strconv.FormatFloat(*k, 'f', -1, 64)
	celsius := math.Round((*k-273.15)*100) / 100
	return fmt.Sprintf("%s K (%s °C)", kelvin, strconv.FormatFloat(celsius, 'f', 2, 64))
}

var hazardLabels = map[catalog.HazardLevel]map[Locale]string{
	catalog.HazardLow:      {LocaleEN: "Low", LocaleZH: "低"},
	catalog.HazardModerate: {LocaleEN: "Moderate", LocaleZH: "中等"},
	catalog.HazardHigh:     {LocaleEN: "High", LocaleZH: "高"},
	catalog.HazardExtreme:  {LocaleEN: "Extreme", LocaleZH: "极高"},
}

// HazardLabel maps a hazard level to its display string. Unrecognized levels
// pass through verbatim; display is not the place to raise.
func HazardLabel(level catalog.HazardLevel, locale Locale) string {
	if labels, ok := hazardLabels[level]; ok {
		return labels[locale]
	}
	return string(level)
}
