package indicator

import (
	"github.com/cinar/indicator/container/bst"

	"github.com/anvh2/polymarket-btc15/internal/models"
)

// movingMax returns the rolling maximum of values over period, backed by a
// self-balancing BST so repeated windows don't re-scan the whole buffer.
// Grounded on the teacher's talib.Max.
func movingMax(period int, values []float64) []float64 {
	result := make([]float64, len(values))
	buffer := make([]float64, period)
	tree := bst.New()

	for i := 0; i < len(values); i++ {
		tree.Insert(values[i])

		if i >= period {
			tree.Remove(buffer[i%period])
		}

		buffer[i%period] = values[i]
		result[i] = tree.Max().(float64)
	}

	return result
}

// movingMin returns the rolling minimum of values over period. Grounded on
// the teacher's talib.Min.
func movingMin(period int, values []float64) []float64 {
	result := make([]float64, len(values))
	buffer := make([]float64, period)
	tree := bst.New()

	for i := 0; i < len(values); i++ {
		tree.Insert(values[i])

		if i >= period {
			tree.Remove(buffer[i%period])
		}

		buffer[i%period] = values[i]
		result[i] = tree.Min().(float64)
	}

	return result
}

// SupportResistance returns the rolling period-bar low/high (support and
// resistance) ending at the last candle. Supplemental to the core indicator
// contract, kept from the decision engine's SupportLevel/ResistanceLevel
// fields this project grew out of.
func SupportResistance(candles []models.Candle, period int) (support, resistance float64, ok bool) {
	if len(candles) < period {
		return 0, 0, false
	}

	highs := make([]float64, len(candles))
	lows := make([]float64, len(candles))
	for i, c := range candles {
		highs[i] = c.High
		lows[i] = c.Low
	}

	resistances := movingMax(period, highs)
	supports := movingMin(period, lows)

	last := len(candles) - 1
	return supports[last], resistances[last], true
}
