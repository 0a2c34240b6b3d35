package llm

import "fmt"

const lookupSystemPrompt = `You are a chemical element data engine. Given an element name, symbol or alias in English or Chinese, respond with a single JSON object describing that element. Rules:
- Populate BOTH language variants of every bilingual field pair (field and fieldCN).
- Temperatures (meltingPoint, boilingPoint) are numbers in Kelvin; use null when genuinely unknown, never 0 or a guess.
- hazardLevel must be exactly one of: Low, Moderate, High, Extreme.
- electronsPerShell is ordered innermost shell first.
- spectrumColors and color are hex color strings like "#FFD700".
- Use empty strings for unknown text values; never omit a field.
- Output only the JSON object, no commentary.`

func lookupPrompt(name string) string {
	return fmt.Sprintf("Provide the complete data record for the chemical element: %s", name)
}

// ElementSchema returns the JSON schema enforced on lookup responses. It
// mirrors the record shape field for field; keep the two in sync when the
// model changes.
func ElementSchema() map[string]any {
	str := func() map[string]any { return map[string]any{"type": "string"} }
	strArray := func() map[string]any {
		return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	}
	nullableNumber := func() map[string]any {
		return map[string]any{"type": []string{"number", "null"}}
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":          str(),
			"nameCN":        str(),
			"pronunciation": str(),
			"symbol":        str(),
			"atomicNumber":  map[string]any{"type": "integer"},
			"atomicMass":    str(),
			"category":      str(),
			"categoryCN":    str(),

			"electronConfiguration": str(),
			"electronsPerShell": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
			"oxidationStates":   str(),
			"electronegativity": str(),
			"ionizationEnergy":  str(),
			"electronAffinity":  str(),
			"atomicRadius":      str(),
			"isotopes":          strArray(),

			"phaseAtSTP":   str(),
			"phaseAtSTPCN": str(),
			"meltingPoint": nullableNumber(),
			"boilingPoint": nullableNumber(),
			"density":      str(),
			"appearance":   str(),
			"appearanceCN": str(),

			"description":   str(),
			"descriptionCN": str(),

			"history": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"discoveryYear": str(),
					"discoverer":    str(),
					"discovererCN":  str(),
					"nameOrigin":    str(),
					"nameOriginCN":  str(),
					"story":         str(),
					"storyCN":       str(),
				},
			},

			"applications":     strArray(),
			"applicationsCN":   strArray(),
			"biologicalRole":   str(),
			"biologicalRoleCN": str(),

			"safety": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"hazardLevel": map[string]any{
						"type": "string",
						"enum": []string{"Low", "Moderate", "High", "Extreme"},
					},
					"mainHazard":    str(),
					"mainHazardCN":  str(),
					"precautions":   str(),
					"precautionsCN": str(),
				},
				"required": []string{"hazardLevel"},
			},

			"spectrumColors": strArray(),
			"color":          str(),
		},
		"required": []string{"name", "nameCN", "symbol", "atomicNumber"},
	}
}
