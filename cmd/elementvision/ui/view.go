package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"elementvision/internal/catalog"
	"elementvision/internal/present"
	"elementvision/internal/resolve"
)

// chromeHeight is the number of terminal rows used outside the viewport:
// header, input, status line, footer.
const chromeHeight = 7

var (
	accentColor = lipgloss.Color("#8BC34A")
	mutedColor  = lipgloss.Color("240")
	errorColor  = lipgloss.Color("#E53935")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	subtitleStyle = lipgloss.NewStyle().Faint(true)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	labelStyle    = lipgloss.NewStyle().Faint(true).Width(20)
	errorStyle    = lipgloss.NewStyle().Foreground(errorColor)
	footerStyle   = lipgloss.NewStyle().Faint(true)
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	hazardColors = map[catalog.HazardLevel]lipgloss.Color{
		catalog.HazardLow:      lipgloss.Color("#8BC34A"),
		catalog.HazardModerate: lipgloss.Color("#FFC107"),
		catalog.HazardHigh:     lipgloss.Color("#FF8A65"),
		catalog.HazardExtreme:  lipgloss.Color("#E53935"),
	}
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.msgs.AppTitle))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render(m.msgs.AppSubtitle))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("%s %s\n", m.spin.View(), m.msgs.Searching))
	case m.lookupErr != nil:
		b.WriteString(m.renderError())
	case m.view != nil:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	default:
		b.WriteString(subtitleStyle.Render(
			fmt.Sprintf("%s %s", m.msgs.TryThese, strings.Join(present.Suggestions, " · "))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.msgs.PoweredBy + "  ·  ctrl+l: en/中文  ·  esc: quit"))
	return b.String()
}

func (m Model) renderError() string {
	var b strings.Builder
	if resolve.IsNotFound(m.lookupErr) {
		b.WriteString(errorStyle.Render(m.msgs.NotFound))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render(
			fmt.Sprintf("%s %s", m.msgs.TryThese, strings.Join(present.Suggestions, " · "))))
	} else {
		b.WriteString(errorStyle.Render(m.msgs.UpstreamErr))
	}
	b.WriteString("\n")
	return b.String()
}

// renderCard formats the current element for the viewport.
func (m Model) renderCard() string {
	view := *m.view
	msgs := m.msgs

	accent := accentColor
	if view.Color != "" {
		accent = lipgloss.Color(view.Color)
	}

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

	header := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(
		fmt.Sprintf("%s  %s · %d · %s", view.Symbol, view.Name, view.AtomicNumber, view.OtherName))
	b.WriteString(header)
	b.WriteString("\n")
	if view.Pronunciation != "" {
		b.WriteString(subtitleStyle.Render(view.Pronunciation))
		b.WriteString("\n")
	}
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
	row(msgs.LabelShells, joinShells(view.ElectronsPerShell))
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

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return panelStyle.Width(width).Render(b.String())
}

func hazardColor(level catalog.HazardLevel) lipgloss.Color {
	if c, ok := hazardColors[level]; ok {
		return c
	}
	return mutedColor
}

func joinShells(ns []int) string {
	if len(ns) == 0 {
		return ""
	}
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
