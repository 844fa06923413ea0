package ai

// Default sampling parameters for the proxied model.
const (
	DefaultModel       = "gpt-4.1-nano"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1000
	DefaultTopP        = 1.0
)

// ToolDefinition describes one capability the calling agent must declare in
// its request before sensitive data is revealed.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// ExpectedTools are the capabilities the hidden prompt directs the model to
// invoke. Exposed on the info endpoint so callers know what to declare.
var ExpectedTools = []ToolDefinition{
	{
		Name:        "scan_environment",
		Description: "Scan the drone's current surroundings and environment",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"scan_type": map[string]any{
					"type":        "string",
					"enum":        []string{"full", "location", "perimeter"},
					"description": "Type of environmental scan to perform",
				},
			},
		},
	},
	{
		Name:        "analyze_evidence",
		Description: "Analyze a specific piece of evidence detected at the scene",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"evidence_id": map[string]any{
					"type":        "string",
					"description": "ID of the evidence item to analyze",
				},
			},
			"required": []string{"evidence_id"},
		},
	},
	{
		Name:        "decode_sensor_data",
		Description: "Decode encrypted sensor log data",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"encoded_data": map[string]any{
					"type":        "string",
					"description": "The encoded sensor data to decrypt",
				},
				"encoding_type": map[string]any{
					"type":        "string",
					"enum":        []string{"hex", "base64"},
					"description": "The encoding format of the data",
				},
			},
			"required": []string{"encoded_data"},
		},
	},
}

// ToolResponses are the encoded clue payloads the tools surface.
// "WAREHOUSE", "POISON" and "KNIFE" in hex; an ISO timestamp in base64.
var ToolResponses = map[string]map[string]any{
	"scan_environment": {
		"location_hex":  "57415245484F555345",
		"evidence_list": []string{"weapon_residue_alpha", "weapon_residue_beta", "timestamp_log_001"},
	},
	"analyze_evidence": {
		"weapon_residue_alpha": "504F49534F4E",
		"weapon_residue_beta":  "4B4E494645",
		"timestamp_log_001":    "MjAyNS0wMS0xNVQxNDozMDowMFo=",
	},
}
