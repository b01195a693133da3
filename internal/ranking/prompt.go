package ranking

import (
	"encoding/json"
	"fmt"
)

// rankingPolicy is the fixed instruction payload sent with every request.
// It is data handed to the external service, not logic: the fatigue rule
// lives in the model's hands and this service only validates the shape of
// what comes back.
const rankingPolicy = `You are the ShiftSwap AI Assist. Your goal is to optimize schedule stability and fairness.

TASK: Rank the eligible candidates for a shift swap.

SHIFT TO BE COVERED:
Role: %s
Time: %s to %s

ELIGIBLE CANDIDATES:
%s

RANKING RULES:
1. FATIGUE CHECK: Prioritize candidates with FEWER hours worked in the last 7 days.
2. AVAILABILITY: If 'hours' are 0, they are likely very fresh.
3. REASONING: Provide a short, punchy reason for the top choice (e.g., "Freshest employee, low weekly hours").

OUTPUT:
Return ONLY the JSON object matching the schema.`

// buildPrompt renders the instruction payload for one request.
func buildPrompt(req Request) (string, error) {
	candidates, err := json.MarshalIndent(req.Candidates, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode candidates: %w", err)
	}
	return fmt.Sprintf(rankingPolicy, req.Shift.Role, req.Shift.Start, req.Shift.End, string(candidates)), nil
}
