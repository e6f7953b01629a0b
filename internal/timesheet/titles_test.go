package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohankatakam/gitsheet/internal/models"
)

func titled(title string) []models.LogEntry {
	return []models.LogEntry{{Title: title, Author: "a", Duration: 30}}
}

func TestCleanTitlesPatternExtractsGroup(t *testing.T) {
	got, err := CleanTitles(titled("Fix: repair login\nmore detail"), []string{`^Fix: (.+)$`})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "repair login", got[0].Title)
}

func TestCleanTitlesFallsBackToFirstLine(t *testing.T) {
	got, err := CleanTitles(titled("Refactor stuff\nextra"), []string{`^Fix: (.+)$`})

	require.NoError(t, err)
	assert.Equal(t, "Refactor stuff", got[0].Title)
}

func TestCleanTitlesNoExpressions(t *testing.T) {
	got, err := CleanTitles(titled("  Refactor stuff  \nextra"), nil)

	require.NoError(t, err)
	assert.Equal(t, "Refactor stuff", got[0].Title, "first line, trimmed")
}

func TestCleanTitlesFirstMatchWins(t *testing.T) {
	exps := []string{`^feat: (.+)$`, `^(\w+):`}
	got, err := CleanTitles(titled("feat: add pagination\nfeat: not this"), exps)

	require.NoError(t, err)
	assert.Equal(t, "add pagination", got[0].Title, "only the first matching expression applies")
}

func TestCleanTitlesMultilineMatch(t *testing.T) {
	// The anchor must match on the second line of the message.
	got, err := CleanTitles(titled("WIP\nFix: flaky test"), []string{`^Fix: (.+)$`})

	require.NoError(t, err)
	assert.Equal(t, "flaky test", got[0].Title)
}

func TestCleanTitlesSkipsEmptyExpressions(t *testing.T) {
	got, err := CleanTitles(titled("Fix: repair login"), []string{"", `^Fix: (.+)$`})

	require.NoError(t, err)
	assert.Equal(t, "repair login", got[0].Title)
}

func TestCleanTitlesInvalidExpression(t *testing.T) {
	_, err := CleanTitles(titled("anything"), []string{"(unclosed"})
	assert.Error(t, err)
}

func TestCleanTitlesExpressionWithoutGroup(t *testing.T) {
	_, err := CleanTitles(titled("anything"), []string{`^Fix: .+$`})
	assert.Error(t, err)
}

func TestCleanTitlesTrimsCapturedGroup(t *testing.T) {
	got, err := CleanTitles(titled("Fix:   spaced out  "), []string{`^Fix:(.+)$`})

	require.NoError(t, err)
	assert.Equal(t, "spaced out", got[0].Title)
}
