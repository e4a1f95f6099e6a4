package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentageRoundsToTwoDecimals(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 100.0, Percentage(1, 1))
	assert.Equal(t, 0.0, Percentage(0, 1))
	assert.Equal(t, 33.33, Percentage(1, 3))
	assert.Equal(t, 66.67, Percentage(2, 3))
	assert.Equal(t, 50.0, Percentage(5, 10))
}

func TestWholePercentageRoundsToInteger(t *testing.T) {
	assert.Equal(t, 0, WholePercentage(0, 0))
	assert.Equal(t, 33, WholePercentage(1, 3))
	assert.Equal(t, 67, WholePercentage(2, 3))
	assert.Equal(t, 50, WholePercentage(1, 2))
	assert.Equal(t, 100, WholePercentage(7, 7))
}

// The two rounding rules are deliberately different per call site.
func TestRoundingRulesDiffer(t *testing.T) {
	assert.Equal(t, 66.67, Percentage(2, 3))
	assert.Equal(t, 67, WholePercentage(2, 3))
}
