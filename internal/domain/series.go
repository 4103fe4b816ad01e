package domain

// Sample is one point of a fetched price series. Timestamp is unix
// seconds, prices are quoted in BTC and USD.
type Sample struct {
	Timestamp int64
	PriceBTC  float64
	PriceUSD  float64
}

// TimeSeries is a timestamp-ascending price series for one asset, no
// duplicate timestamps. Read-only after fetch. The last sample's delta to
// its predecessor varies randomly (ingestion lag at the source), so the
// last sample must never be used for interval estimation.
type TimeSeries []Sample

// Len returns the number of samples.
func (ts TimeSeries) Len() int { return len(ts) }

// SamplingProfile describes the effective resolution of one TimeSeries.
// Interval is the average spacing in seconds computed over every delta
// except the last one; Range is the full wall-clock span including the
// last sample, used for reporting only.
type SamplingProfile struct {
	Interval    float64
	SampleCount int
	Range       float64
}

// LookbackOffsets maps each lookback window to a sample-count offset back
// from the reference index (SampleCount-2). An offset of -1 means the
// window could not be resolved for this series.
type LookbackOffsets struct {
	Hour  int
	Day   int
	Day7  int
	Day30 int
}

// Offset returns the sample-count offset for the given window.
func (o LookbackOffsets) Offset(w Window) int {
	switch w {
	case WindowHour:
		return o.Hour
	case WindowDay:
		return o.Day
	case Window7Day:
		return o.Day7
	case Window30Day:
		return o.Day30
	}
	return -1
}
