package present

// Messages is the static UI copy for one locale.
type Messages struct {
	AppTitle     string
	AppSubtitle  string
	SearchPrompt string
	Searching    string
	NotFound     string
	UpstreamErr  string
	TryThese     string
	PoweredBy    string

	SectionProperties   string
	SectionAtomic       string
	SectionHistory      string
	SectionApplications string
	SectionBiological   string
	SectionSafety       string

	LabelName          string
	LabelSymbol        string
	LabelAtomicNumber  string
	LabelAtomicMass    string
	LabelCategory      string
	LabelPhase         string
	LabelMelting       string
	LabelBoiling       string
	LabelDensity       string
	LabelAppearance    string
	LabelConfiguration string
	LabelShells        string
	LabelOxidation     string
	LabelElectroneg    string
	LabelIonization    string
	LabelAffinity      string
	LabelRadius        string
	LabelIsotopes      string
	LabelDiscovery     string
	LabelDiscoverer    string
	LabelNameOrigin    string
	LabelHazard        string
	LabelMainHazard    string
	LabelPrecautions   string
}

// Suggestions offered alongside a not-found result.
var Suggestions = []string{"Neon", "Bismuth", "Gold", "Uranium"}

var messages = map[Locale]Messages{
	LocaleEN: {
		AppTitle:     "ElementVision",
		AppSubtitle:  "Chemical element encyclopedia",
		SearchPrompt: "Enter an element name, symbol or Chinese name...",
		Searching:    "Consulting the knowledge base...",
		NotFound:     "Unable to analyze element data. Please verify the name.",
		UpstreamErr:  "Something went wrong while fetching element data. Please try again.",
		TryThese:     "Try one of these:",
		PoweredBy:    "Powered by Gemini 3 Flash",

		SectionProperties:   "Physical Properties",
		SectionAtomic:       "Atomic Structure",
		SectionHistory:      "History",
		SectionApplications: "Applications",
		SectionBiological:   "Biological Role",
		SectionSafety:       "Safety",

		LabelName:          "Name",
		LabelSymbol:        "Symbol",
		LabelAtomicNumber:  "Atomic Number",
		LabelAtomicMass:    "Atomic Mass",
		LabelCategory:      "Category",
		LabelPhase:         "Phase at STP",
		LabelMelting:       "Melting Point",
		LabelBoiling:       "Boiling Point",
		LabelDensity:       "Density",
		LabelAppearance:    "Appearance",
		LabelConfiguration: "Electron Configuration",
		LabelShells:        "Electrons per Shell",
		LabelOxidation:     "Oxidation States",
		LabelElectroneg:    "Electronegativity",
		LabelIonization:    "Ionization Energy",
		LabelAffinity:      "Electron Affinity",
		LabelRadius:        "Atomic Radius",
		LabelIsotopes:      "Isotopes",
		LabelDiscovery:     "Discovered",
		LabelDiscoverer:    "Discoverer",
		LabelNameOrigin:    "Name Origin",
		LabelHazard:        "Hazard Level",
		LabelMainHazard:    "Main Hazard",
		LabelPrecautions:   "Precautions",
	},
	LocaleZH: {
		AppTitle:     "元素视界",
		AppSubtitle:  "化学元素百科",
		SearchPrompt: "输入元素名称、符号或中文名...",
		Searching:    "正在查询知识库...",
		NotFound:     "无法分析元素数据，请检查名称。",
		UpstreamErr:  "获取元素数据时出错，请稍后重试。",
		TryThese:     "试试这些：",
		PoweredBy:    "Powered by Gemini 3 Flash",

		SectionProperties:   "物理性质",
		SectionAtomic:       "原子结构",
		SectionHistory:      "发现历史",
		SectionApplications: "主要用途",
		SectionBiological:   "生物作用",
		SectionSafety:       "安全信息",

		LabelName:          "名称",
		LabelSymbol:        "符号",
		LabelAtomicNumber:  "原子序数",
		LabelAtomicMass:    "原子量",
		LabelCategory:      "类别",
		LabelPhase:         "标况物态",
		LabelMelting:       "熔点",
		LabelBoiling:       "沸点",
		LabelDensity:       "密度",
		LabelAppearance:    "外观",
		LabelConfiguration: "电子排布",
		LabelShells:        "电子层",
		LabelOxidation:     "氧化态",
		LabelElectroneg:    "电负性",
		LabelIonization:    "电离能",
		LabelAffinity:      "电子亲和能",
		LabelRadius:        "原子半径",
		LabelIsotopes:      "同位素",
		LabelDiscovery:     "发现年份",
		LabelDiscoverer:    "发现者",
		LabelNameOrigin:    "名称来源",
		LabelHazard:        "危险等级",
		LabelMainHazard:    "主要危害",
		LabelPrecautions:   "注意事项",
	},
}

// MessagesFor returns the copy table for a locale, falling back to the
// default locale for anything unrecognized.
func MessagesFor(locale Locale) Messages {
	if m, ok := messages[locale]; ok {
		return m
	}
	return messages[DefaultLocale]
}
