package models

// Granularity is the time-bucketing scheme for chart data.
type Granularity string

const (
	Daily    Granularity = "daily"
	Monthly  Granularity = "monthly"
	Annually Granularity = "annually"
)

// ParseGranularity maps a request value to a Granularity, falling back to Daily
// for anything it does not recognize.
func ParseGranularity(s string) Granularity {
	switch g := Granularity(s); g {
	case Daily, Monthly, Annually:
		return g
	default:
		return Daily
	}
}

// Chart is an ordered label axis with its datasets. Labels and every dataset's
// Data have the same length.
type Chart struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one named series of a Chart plus the presentation hints the
// dashboard renders it with.
type Dataset struct {
	Label                string    `json:"label" example:"Close"`
	Data                 []float64 `json:"data"`
	Fill                 bool      `json:"fill,omitempty"`
	BackgroundColor      string    `json:"backgroundColor,omitempty"`
	BorderColor          string    `json:"borderColor,omitempty"`
	Tension              float64   `json:"tension,omitempty"`
	PointRadius          int       `json:"pointRadius,omitempty"`
	PointBackgroundColor string    `json:"pointBackgroundColor,omitempty"`
}

// EmptyChart returns a chart with no labels and no datasets, encoded as empty
// JSON arrays rather than null.
func EmptyChart() Chart {
	return Chart{Labels: []string{}, Datasets: []Dataset{}}
}
