package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingResult_Top(t *testing.T) {
	t.Run("empty result falls back", func(t *testing.T) {
		top, reason := RankingResult{}.Top()

		assert.Nil(t, top)
		assert.Equal(t, "AI Service unavailable", reason)
	})

	t.Run("non-empty result projects first element", func(t *testing.T) {
		result := RankingResult{RankedColleagues: []RankedCandidate{
			{ColleagueID: 3, Name: "Charlie", Score: 0.95, Reason: "Freshest employee, low weekly hours"},
			{ColleagueID: 2, Name: "Bob", Score: 0.3, Reason: "High recent workload"},
		}}

		top, reason := result.Top()

		require.NotNil(t, top)
		assert.Equal(t, "Charlie", top.Name)
		assert.Equal(t, "Freshest employee, low weekly hours", reason)
	})
}

func TestRankingResult_Validate(t *testing.T) {
	valid := RankedCandidate{ColleagueID: 1, Name: "Bob", Score: 0.5, Reason: "ok"}

	t.Run("accepts empty result", func(t *testing.T) {
		assert.NoError(t, RankingResult{}.Validate())
	})

	t.Run("accepts boundary scores", func(t *testing.T) {
		zero := valid
		zero.Score = 0
		one := valid
		one.Score = 1
		result := RankingResult{RankedColleagues: []RankedCandidate{zero, one}}

		assert.NoError(t, result.Validate())
	})

	t.Run("rejects score above one", func(t *testing.T) {
		bad := valid
		bad.Score = 1.5
		err := RankingResult{RankedColleagues: []RankedCandidate{bad}}.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "score")
	})

	t.Run("rejects negative score", func(t *testing.T) {
		bad := valid
		bad.Score = -0.1
		assert.Error(t, RankingResult{RankedColleagues: []RankedCandidate{bad}}.Validate())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		bad := valid
		bad.Name = "  "
		assert.Error(t, RankingResult{RankedColleagues: []RankedCandidate{bad}}.Validate())
	})

	t.Run("rejects missing reason", func(t *testing.T) {
		bad := valid
		bad.Reason = ""
		assert.Error(t, RankingResult{RankedColleagues: []RankedCandidate{bad}}.Validate())
	})

	t.Run("rejects missing id", func(t *testing.T) {
		bad := valid
		bad.ColleagueID = 0
		assert.Error(t, RankingResult{RankedColleagues: []RankedCandidate{bad}}.Validate())
	})

	t.Run("reports the offending position", func(t *testing.T) {
		bad := valid
		bad.Score = 2
		err := RankingResult{RankedColleagues: []RankedCandidate{valid, bad}}.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "candidate 1")
	})
}

func TestRankingResult_AuditBlob(t *testing.T) {
	t.Run("empty result serializes to sentinel", func(t *testing.T) {
		assert.Equal(t, "{}", RankingResult{}.AuditBlob())
	})

	t.Run("sentinel decodes to empty result", func(t *testing.T) {
		result, err := ParseAuditBlob("{}")

		require.NoError(t, err)
		assert.True(t, result.Empty())
	})

	t.Run("round trip preserves the result", func(t *testing.T) {
		original := RankingResult{RankedColleagues: []RankedCandidate{
			{ColleagueID: 3, Name: "Charlie", Score: 0.95, Reason: "Freshest employee, low weekly hours"},
			{ColleagueID: 2, Name: "Bob", Score: 0.3, Reason: "High recent workload"},
		}}

		decoded, err := ParseAuditBlob(original.AuditBlob())

		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})

	t.Run("rejects malformed blob", func(t *testing.T) {
		_, err := ParseAuditBlob("{not json")
		assert.Error(t, err)
	})
}
