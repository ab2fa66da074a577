package common

// Condition labels of the two congestion-control methods under comparison.
// Chart legends use the display form, file names the lowercase form.
const (
	LabelRatio = "Ratio"
	LabelGCC   = "GCC"

	KeyRatio = "ratio"
	KeyGCC   = "gcc"
)

// Summary holds the distribution statistics reported for one sample set.
type Summary struct {
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	P10   float64 `json:"p10"`
	P25   float64 `json:"p25"`
	P50   float64 `json:"p50"`
	P75   float64 `json:"p75"`
	P90   float64 `json:"p90"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}
