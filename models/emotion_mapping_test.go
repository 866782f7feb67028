package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmotion(t *testing.T) {
	emotion, err := ParseEmotion("  HaPPy ")
	require.NoError(t, err)
	assert.Equal(t, "happy", emotion)

	for _, valid := range []string{"happy", "sad", "angry", "fear", "surprise", "neutral", "disgust"} {
		_, err := ParseEmotion(valid)
		assert.NoError(t, err)
	}

	_, err = ParseEmotion("joyful")
	require.Error(t, err)
	_, ok := AsDomainError(err)
	assert.True(t, ok)
}

func TestParseIntensityBandSynonyms(t *testing.T) {
	for _, spelling := range []string{"high", "HIGH", "superior", "Superior"} {
		band, err := ParseIntensityBand(spelling)
		require.NoError(t, err)
		assert.Equal(t, BandHigh, band)
	}
	for _, spelling := range []string{"moderate", "inferior", "INFERIOR"} {
		band, err := ParseIntensityBand(spelling)
		require.NoError(t, err)
		assert.Equal(t, BandModerate, band)
	}

	_, err := ParseIntensityBand("extreme")
	require.Error(t, err)
}

func TestMatchesBandAndThreshold(t *testing.T) {
	high := EmotionMapping{IntensityBand: BandHigh, MinPercentage: 70}
	assert.True(t, high.Matches(80))
	assert.True(t, high.Matches(70))
	assert.False(t, high.Matches(65)) // inside band, under threshold
	assert.False(t, high.Matches(40)) // outside band

	moderate := EmotionMapping{IntensityBand: BandModerate, MinPercentage: 20}
	assert.True(t, moderate.Matches(35))
	assert.False(t, moderate.Matches(10)) // under threshold
	assert.False(t, moderate.Matches(60)) // outside band
}

func TestMatchesAtExactlyFifty(t *testing.T) {
	// 50 satisfies both band predicates; the matcher's priority
	// ordering decides between them.
	high := EmotionMapping{IntensityBand: BandHigh, MinPercentage: 40}
	moderate := EmotionMapping{IntensityBand: BandModerate, MinPercentage: 30}
	assert.True(t, high.Matches(50))
	assert.True(t, moderate.Matches(50))
}
