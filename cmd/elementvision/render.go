package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"elementvision/internal/catalog"
	"elementvision/internal/present"
)

// Semantic hazard colors, shared with the dashboard.
var hazardColors = map[catalog.HazardLevel]lipgloss.Color{
	catalog.HazardLow:      lipgloss.Color("#8BC34A"),
	catalog.HazardModerate: lipgloss.Color("#FFC107"),
	catalog.HazardHigh:     lipgloss.Color("#FF8A65"),
	catalog.HazardExtreme:  lipgloss.Color("#E53935"),
}

func hazardColor(level catalog.HazardLevel) lipgloss.Color {
	if c, ok := hazardColors[level]; ok {
		return c
	}
	return lipgloss.Color("240")
}

// renderCard formats a full element card for plain (non-interactive) output.
func renderCard(view present.DisplayView, msgs present.Messages) string {
	accent := lipgloss.Color("#8BC34A")
	if view.Color != "" {
		accent = lipgloss.Color(view.Color)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	sectionStyle := lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle := lipgloss.NewStyle().Faint(true).Width(22)

	var b strings.Builder
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(label), value)
	}
	section := func(name string) {
		fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render(name))
	}

	title := fmt.Sprintf("%s (%s) · %d", view.Name, view.Symbol, view.AtomicNumber)
	if view.OtherName != "" {
		title += " · " + view.OtherName
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	if view.Description != "" {
		b.WriteString(view.Description)
		b.WriteString("\n")
	}

	section(msgs.SectionProperties)
	row(msgs.LabelCategory, view.Category)
	row(msgs.LabelAtomicMass, view.AtomicMass)
	row(msgs.LabelPhase, view.Phase)
	row(msgs.LabelMelting, view.Melting)
	row(msgs.LabelBoiling, view.Boiling)
	row(msgs.LabelDensity, view.Density)
	row(msgs.LabelAppearance, view.Appearance)

	section(msgs.SectionAtomic)
	row(msgs.LabelConfiguration, view.ElectronConfiguration)
	row(msgs.LabelShells, joinInts(view.ElectronsPerShell))
	row(msgs.LabelOxidation, view.OxidationStates)
	row(msgs.LabelElectroneg, view.Electronegativity)
	row(msgs.LabelIonization, view.IonizationEnergy)
	row(msgs.LabelAffinity, view.ElectronAffinity)
	row(msgs.LabelRadius, view.AtomicRadius)
	row(msgs.LabelIsotopes, strings.Join(view.Isotopes, ", "))

	if view.History != (present.DisplayHistory{}) {
		section(msgs.SectionHistory)
		row(msgs.LabelDiscovery, view.History.DiscoveryYear)
		row(msgs.LabelDiscoverer, view.History.Discoverer)
		row(msgs.LabelNameOrigin, view.History.NameOrigin)
		if view.History.Story != "" {
			b.WriteString(view.History.Story)
			b.WriteString("\n")
		}
	}

	if len(view.Applications) > 0 {
		section(msgs.SectionApplications)
		for _, app := range view.Applications {
			fmt.Fprintf(&b, "  • %s\n", app)
		}
	}

	if view.BiologicalRole != "" {
		section(msgs.SectionBiological)
		b.WriteString(view.BiologicalRole)
		b.WriteString("\n")
	}

	section(msgs.SectionSafety)
	hazard := lipgloss.NewStyle().Bold(true).
		Foreground(hazardColor(view.Safety.HazardLevel)).
		Render(view.Safety.HazardLabel)
	row(msgs.LabelHazard, hazard)
	row(msgs.LabelMainHazard, view.Safety.MainHazard)
	row(msgs.LabelPrecautions, view.Safety.Precautions)

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(msgs.PoweredBy))
	b.WriteString("\n")
	return b.String()
}

func joinInts(ns []int) string {
	if len(ns) == 0 {
		return ""
	}
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
