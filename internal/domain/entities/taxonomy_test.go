package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionsAreFixedAndDisjoint(t *testing.T) {
	require.Len(t, Dimensions, 10)

	seenIDs := make(map[string]bool)
	seenQuestions := make(map[string]bool)
	for _, dim := range Dimensions {
		assert.False(t, seenIDs[dim.ID], "dimensão %s duplicada", dim.ID)
		seenIDs[dim.ID] = true

		for _, qid := range dim.QuestionIDs {
			assert.NotEmpty(t, qid)
			assert.False(t, seenQuestions[qid], "pergunta %s em mais de uma dimensão", qid)
			seenQuestions[qid] = true
		}
	}

	// As perguntas do workLifeBalanceScore não pertencem a nenhuma dimensão
	for _, qid := range WellbeingQuestionIDs {
		assert.False(t, seenQuestions[qid], "pergunta %s não deveria estar na taxonomia", qid)
	}
}

func TestLikertScoresAreStrictlyIncreasing(t *testing.T) {
	require.Len(t, LikertLevels, 5)

	seen := make(map[int]bool)
	for i, level := range LikertLevels {
		score, ok := LikertScore(level.Label)
		require.True(t, ok, "rótulo %q sem score", level.Label)
		assert.Equal(t, i+1, score)
		assert.Equal(t, level.Score, score)
		assert.False(t, seen[score], "score %d duplicado", score)
		seen[score] = true
	}

	assert.Equal(t, 1, mustScore(t, LikertDiscordoTotal))
	assert.Equal(t, 5, mustScore(t, LikertConcordoTotal))
}

func mustScore(t *testing.T, label string) int {
	t.Helper()
	score, ok := LikertScore(label)
	require.True(t, ok)
	return score
}

func TestLikertScoreUnknownLabel(t *testing.T) {
	_, ok := LikertScore("Talvez")
	assert.False(t, ok)

	_, ok = LikertScore("")
	assert.False(t, ok)
}

func TestAnswerMapIsTotalLookup(t *testing.T) {
	resp := SurveyResponse{
		Answers: []ResponseAnswer{
			{QuestionID: "q2", Value: LikertNeutro},
		},
	}
	m := resp.AnswerMap()

	label, ok := m["q2"]
	require.True(t, ok)
	assert.Equal(t, LikertNeutro, label)

	_, ok = m["q99"]
	assert.False(t, ok)
}
