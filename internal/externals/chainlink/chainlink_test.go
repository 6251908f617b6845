package chainlink

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleAnswer_EightDecimals(t *testing.T) {
	answer := big.NewInt(10_005_000_000_000) // 100050.00000000 scaled by 1e8
	got := scaleAnswer(answer, 8)
	assert.InDelta(t, 100050.0, got, 1e-6)
}
