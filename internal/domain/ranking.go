package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FallbackReason is returned whenever no ranking is available, whether the
// service was unreachable, misconfigured, or returned nothing usable.
const FallbackReason = "AI Service unavailable"

// emptyAuditBlob keeps the audit column parseable when ranking failed.
const emptyAuditBlob = "{}"

// RankedCandidate is one colleague as scored by the ranking service. It is
// only ever embedded in a RankingResult, never stored on its own.
type RankedCandidate struct {
	ColleagueID int64   `json:"userId"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Reason      string  `json:"reason"`
}

// RankingResult is the ordered outcome of one ranking call, best match
// first. Empty means "no ranking available" — the no-candidates case and
// the failure case are deliberately indistinguishable here.
type RankingResult struct {
	RankedColleagues []RankedCandidate `json:"rankedColleagues"`
}

// Empty reports whether the result carries no candidates.
func (r RankingResult) Empty() bool {
	return len(r.RankedColleagues) == 0
}

// Top projects the result into the best match and its reason. An empty
// result yields no match and the fixed fallback reason.
func (r RankingResult) Top() (*RankedCandidate, string) {
	if r.Empty() {
		return nil, FallbackReason
	}
	top := r.RankedColleagues[0]
	return &top, top.Reason
}

// Validate checks the shape the ranking service promised: every candidate
// carries an id, a name, a reason, and a score within [0, 1].
func (r RankingResult) Validate() error {
	for i, c := range r.RankedColleagues {
		if c.ColleagueID <= 0 {
			return fmt.Errorf("ranked candidate %d: missing userId", i)
		}
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("ranked candidate %d: missing name", i)
		}
		if strings.TrimSpace(c.Reason) == "" {
			return fmt.Errorf("ranked candidate %d: missing reason", i)
		}
		if c.Score < 0 || c.Score > 1 {
			return fmt.Errorf("ranked candidate %d: score %v outside [0,1]", i, c.Score)
		}
	}
	return nil
}

// AuditBlob serializes the result for the swap request audit column. An
// empty result becomes the "{}" sentinel so the column always holds a
// structured document, never a null marker.
func (r RankingResult) AuditBlob() string {
	if r.Empty() {
		return emptyAuditBlob
	}
	data, err := json.Marshal(r)
	if err != nil {
		return emptyAuditBlob
	}
	return string(data)
}

// ParseAuditBlob decodes a stored audit blob back into a RankingResult.
// The "{}" sentinel decodes to the empty result.
func ParseAuditBlob(blob string) (RankingResult, error) {
	var result RankingResult
	if strings.TrimSpace(blob) == "" {
		return result, nil
	}
	if err := json.Unmarshal([]byte(blob), &result); err != nil {
		return RankingResult{}, fmt.Errorf("decode audit blob: %w", err)
	}
	return result, nil
}
