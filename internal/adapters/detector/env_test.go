package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hotloop/internal/adapters/detector"
)

func TestDetectEnvironment_CI(t *testing.T) {
	for _, value := range []string{"true", "1"} {
		t.Run("CI="+value, func(t *testing.T) {
			t.Setenv("CI", value)

			assert.Equal(t, detector.FormatText, detector.DetectEnvironment())
		})
	}
}

func TestDetectEnvironment_NeverAuto(t *testing.T) {
	t.Setenv("CI", "")

	got := detector.DetectEnvironment()

	assert.Contains(t, []detector.LogFormat{detector.FormatPretty, detector.FormatText}, got)
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.LogFormat
		userFlag     string
		expected     detector.LogFormat
	}{
		{name: "auto respects detection (pretty)", autoDetected: detector.FormatPretty, userFlag: "auto", expected: detector.FormatPretty},
		{name: "auto respects detection (text)", autoDetected: detector.FormatText, userFlag: "auto", expected: detector.FormatText},
		{name: "empty flag respects detection", autoDetected: detector.FormatPretty, userFlag: "", expected: detector.FormatPretty},
		{name: "pretty overrides detection", autoDetected: detector.FormatText, userFlag: "pretty", expected: detector.FormatPretty},
		{name: "text overrides detection", autoDetected: detector.FormatPretty, userFlag: "text", expected: detector.FormatText},
		{name: "plain is alias for text", autoDetected: detector.FormatPretty, userFlag: "plain", expected: detector.FormatText},
		{name: "json overrides detection", autoDetected: detector.FormatPretty, userFlag: "json", expected: detector.FormatJSON},
		{name: "unknown flag falls back", autoDetected: detector.FormatText, userFlag: "fancy", expected: detector.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveFormat(tt.autoDetected, tt.userFlag))
		})
	}
}

func TestLogFormat_String(t *testing.T) {
	assert.Equal(t, "auto", detector.FormatAuto.String())
	assert.Equal(t, "pretty", detector.FormatPretty.String())
	assert.Equal(t, "text", detector.FormatText.String())
	assert.Equal(t, "json", detector.FormatJSON.String())
}
