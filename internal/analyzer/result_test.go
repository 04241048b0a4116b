package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResultAcceptsWellFormedDocument(t *testing.T) {
	got, err := ParseResult(scenarioResponse)
	require.NoError(t, err)
	assert.Equal(t, scenarioResult, got)
}

func TestParseResultKeepsFieldsVerbatim(t *testing.T) {
	got, err := ParseResult(`{"summary":"  Padded summary. ","recommendedService":"Design & Build","complexityEstimation":"High","estimatedTimeline":"6-8 weeks"}`)
	require.NoError(t, err)

	assert.Equal(t, "  Padded summary. ", got.Summary)
	assert.Equal(t, "Design & Build", got.RecommendedService)
	assert.Equal(t, "6-8 weeks", got.EstimatedTimeline)
}

func TestParseResultStripsCodeFence(t *testing.T) {
	got, err := ParseResult("```json\n" + scenarioResponse + "\n```")
	require.NoError(t, err)
	assert.Equal(t, scenarioResult, got)
}

func TestParseResultRejections(t *testing.T) {
	cases := map[string]string{
		"empty":              "",
		"whitespace":         "  \n\t ",
		"not json":           "Medium complexity, about 3 months.",
		"truncated":          `{"summary":"Office`,
		"missing timeline":   `{"summary":"s","recommendedService":"r","complexityEstimation":"Low"}`,
		"blank service":      `{"summary":"s","recommendedService":"  ","complexityEstimation":"Low","estimatedTimeline":"t"}`,
		"wrong type":         `{"summary":1,"recommendedService":"r","complexityEstimation":"Low","estimatedTimeline":"t"}`,
		"null field":         `{"summary":null,"recommendedService":"r","complexityEstimation":"Low","estimatedTimeline":"t"}`,
		"unknown field":      `{"summary":"s","recommendedService":"r","complexityEstimation":"Low","estimatedTimeline":"t","budget":"$1M"}`,
		"lowercase enum":     `{"summary":"s","recommendedService":"r","complexityEstimation":"low","estimatedTimeline":"t"}`,
		"trailing document":  scenarioResponse + scenarioResponse,
		"array":              `[` + scenarioResponse + `]`,
		"unterminated fence": "```",
	}

	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseResult(text)
			assert.Error(t, err)
		})
	}
}

func TestParseResultEmptyIsErrEmptyResponse(t *testing.T) {
	_, err := ParseResult("   ")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON("```\n{\"a\":1}```"))
	assert.Equal(t, "```", extractJSON("```"))
}
