package present

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elementvision/internal/catalog"
)

func sampleRecord() catalog.Record {
	melting := 1337.33
	boiling := 3243.0
	return catalog.Record{
		Name:                  "Gold",
		NameCN:                "金",
		Pronunciation:         "jīn",
		Symbol:                "Au",
		AtomicNumber:          79,
		AtomicMass:            "196.97",
		Category:              "transition metal",
		CategoryCN:            "过渡金属",
		ElectronConfiguration: "[Xe] 4f14 5d10 6s1",
		ElectronsPerShell:     []int{2, 8, 18, 32, 18, 1},
		PhaseAtSTP:            "Solid",
		PhaseAtSTPCN:          "固态",
		MeltingPoint:          &melting,
		BoilingPoint:          &boiling,
		Density:               "19.30 g/cm³",
		Appearance:            "metallic yellow",
		AppearanceCN:          "金属黄色",
		Description:           "A dense noble metal.",
		DescriptionCN:         "一种致密的贵金属。",
		History: catalog.History{
			DiscoveryYear: "ancient",
			Discoverer:    "unknown",
			DiscovererCN:  "不详",
			NameOrigin:    "Latin aurum",
			NameOriginCN:  "源自拉丁语 aurum",
			Story:         "Known since antiquity.",
			StoryCN:       "自古以来就为人所知。",
		},
		Applications:     []string{"Jewelry", "Electronics"},
		ApplicationsCN:   []string{"珠宝", "电子器件"},
		BiologicalRole:   "No known biological role.",
		BiologicalRoleCN: "无已知生物作用。",
		Safety: catalog.Safety{
			HazardLevel:   catalog.HazardLow,
			MainHazard:    "Essentially inert.",
			MainHazardCN:  "基本惰性。",
			Precautions:   "None required.",
			PrecautionsCN: "无需特别防护。",
		},
		SpectrumColors: []string{"#ffd700"},
		Color:          "#ffd700",
	}
}

func TestProject_LocaleSelection(t *testing.T) {
	rec := sampleRecord()

	en := Project(rec, LocaleEN)
	assert.Equal(t, "Gold", en.Name)
	assert.Equal(t, "金", en.OtherName)
	assert.Equal(t, "transition metal", en.Category)
	assert.Equal(t, "Solid", en.Phase)
	assert.Equal(t, []string{"Jewelry", "Electronics"}, en.Applications)
	assert.Equal(t, "unknown", en.History.Discoverer)
	assert.Equal(t, "Essentially inert.", en.Safety.MainHazard)

	zh := Project(rec, LocaleZH)
	assert.Equal(t, "金", zh.Name)
	assert.Equal(t, "Gold", zh.OtherName)
	assert.Equal(t, "过渡金属", zh.Category)
	assert.Equal(t, "固态", zh.Phase)
	assert.Equal(t, []string{"珠宝", "电子器件"}, zh.Applications)
	assert.Equal(t, "不详", zh.History.Discoverer)
	assert.Equal(t, "基本惰性。", zh.Safety.MainHazard)
}

// Fields without a bilingual pair must be byte-identical across the two
// projections of the same record.
func TestProject_SharedFieldsLocaleInvariant(t *testing.T) {
	rec := sampleRecord()
	en := Project(rec, LocaleEN)
	zh := Project(rec, LocaleZH)

	type shared struct {
		Symbol            string
		AtomicNumber      int
		AtomicMass        string
		ElectronsPerShell []int
		Melting           string
		Boiling           string
		SpectrumColors    []string
		Color             string
	}
	pick := func(v DisplayView) shared {
		return shared{v.Symbol, v.AtomicNumber, v.AtomicMass, v.ElectronsPerShell,
			v.Melting, v.Boiling, v.SpectrumColors, v.Color}
	}
	if diff := cmp.Diff(pick(en), pick(zh)); diff != "" {
		t.Errorf("shared fields differ across locales (-en +zh):\n%s", diff)
	}
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	rec := sampleRecord()
	want := sampleRecord()
	_ = Project(rec, LocaleZH)
	_ = Project(rec, LocaleEN)
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mutated by projection:\n%s", diff)
	}
}

func TestFormatTemp(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }
	tests := []struct {
		name string
		k    *float64
		want string
	}{
		{"nil is placeholder", nil, "—"},
		{"absolute zero", ptr(0), "0 K (-273.15 °C)"},
		{"gold melting", ptr(1337.33), "1337.33 K (1064.18 °C)"},
		{"water freezing", ptr(273.15), "273.15 K (0.00 °C)"},
		{"rounds to 2 places", ptr(300.456), "300.456 K (27.31 °C)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatTemp(tc.k, LocaleEN))
			// Formatting is numeric only; locale does not change it.
			assert.Equal(t, tc.want, FormatTemp(tc.k, LocaleZH))
		})
	}
}

func TestHazardLabel(t *testing.T) {
	tests := []struct {
		level  catalog.HazardLevel
		en, zh string
	}{
		{catalog.HazardLow, "Low", "低"},
		{catalog.HazardModerate, "Moderate", "中等"},
		{catalog.HazardHigh, "High", "高"},
		{catalog.HazardExtreme, "Extreme", "极高"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.en, HazardLabel(tc.level, LocaleEN))
		assert.Equal(t, tc.zh, HazardLabel(tc.level, LocaleZH))
	}

	// Unknown levels pass through verbatim in both locales.
	assert.Equal(t, "Radioactive", HazardLabel(catalog.HazardLevel("Radioactive"), LocaleEN))
	assert.Equal(t, "Radioactive", HazardLabel(catalog.HazardLevel("Radioactive"), LocaleZH))
	assert.Equal(t, "", HazardLabel(catalog.HazardLevel(""), LocaleZH))
}

func TestParseLocale(t *testing.T) {
	for _, in := range []string{"en", "EN", " en "} {
		got, err := ParseLocale(in)
		require.NoError(t, err)
		assert.Equal(t, LocaleEN, got)
	}
	got, err := ParseLocale("zh")
	require.NoError(t, err)
	assert.Equal(t, LocaleZH, got)

	_, err = ParseLocale("fr")
	assert.Error(t, err)
}

func TestLocaleToggle(t *testing.T) {
	assert.Equal(t, LocaleEN, LocaleZH.Toggle())
	assert.Equal(t, LocaleZH, LocaleEN.Toggle())
}

func TestMessagesFor(t *testing.T) {
	assert.Equal(t, "元素视界", MessagesFor(LocaleZH).AppTitle)
	assert.Equal(t, "ElementVision", MessagesFor(LocaleEN).AppTitle)
	// Unknown locales fall back to the default.
	assert.Equal(t, MessagesFor(DefaultLocale), MessagesFor(Locale("fr")))
}
