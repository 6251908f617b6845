package models

import "fmt"

// candleWindowMs is the bucket width used by the candle aggregator and by
// every invariant that checks open-time alignment.
const candleWindowMs = 60_000

// Candle is an immutable-once-closed 1-minute OHLC bar.
type Candle struct {
	OpenTime int64   `json:"openTime"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	Volume   float64 `json:"volume"`
	Closed   bool    `json:"closed"`
}

// CloseTime is OpenTime plus one bucket width, regardless of whether the
// candle has actually closed yet.
func (c Candle) CloseTime() int64 {
	return c.OpenTime + candleWindowMs
}

func (c Candle) String() string {
	return fmt.Sprintf("candle(openTime=%d o=%.2f h=%.2f l=%.2f c=%.2f v=%.2f closed=%t)",
		c.OpenTime, c.Open, c.High, c.Low, c.Close, c.Volume, c.Closed)
}

// Tick is a single (timestamp, price) sample from a spot or on-chain feed.
type Tick struct {
	TimestampMs int64   `json:"timestampMs"`
	Price       float64 `json:"price"`
}
