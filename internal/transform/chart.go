package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guttosm/idxboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Dataset presentation defaults for the close-price series.
const (
	closeLabel       = "Close"
	closeFill        = "rgba(0,123,255,0.1)"
	closeColor       = "#007bff"
	closeTension     = 0.4
	closePointRadius = 3
)

// Chart turns sorted bucket documents ({_id: <key>, value: <sum>}) into labels
// and a single "Close" dataset.
func Chart(g models.Granularity, buckets []bson.M) models.Chart {
	labels := make([]string, 0, len(buckets))
	data := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		id, _ := lookup(b, "_id")
		labels = append(labels, ChartLabel(g, id))
		data = append(data, Float(b, "value"))
	}

	return models.Chart{
		Labels: labels,
		Datasets: []models.Dataset{{
			Label:                closeLabel,
			Data:                 data,
			Fill:                 true,
			BackgroundColor:      closeFill,
			BorderColor:          closeColor,
			Tension:              closeTension,
			PointRadius:          closePointRadius,
			PointBackgroundColor: closeColor,
		}},
	}
}

// ChartLabel renders a group key as YYYY-MM-DD (daily), YYYY-MM (monthly) or
// YYYY (annually). A missing or null key, or key component, yields "".
func ChartLabel(g models.Granularity, id any) string {
	if id == nil {
		return ""
	}

	switch g {
	case models.Monthly:
		year, okY := lookup(id, "year")
		month, okM := lookup(id, "month")
		if !okY || !okM {
			return ""
		}
		y, m := number(year), number(month)
		if y == "" || m == "" {
			return ""
		}
		if len(m) == 1 {
			m = "0" + m
		}
		return y + "-" + m
	case models.Annually:
		year, ok := lookup(id, "year")
		if !ok {
			return ""
		}
		return number(year)
	default:
		date, ok := lookup(id, "date")
		if !ok {
			return ""
		}
		if t, ok := toTime(date); ok {
			return t.UTC().Format("2006-01-02")
		}
		if s, ok := date.(string); ok {
			s, _, _ = strings.Cut(strings.TrimSpace(s), "T")
			return s
		}
		return ""
	}
}

// number renders a numeric year/month component without a fractional part.
func number(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	f, ok := toFloat(v)
	if !ok {
		return ""
	}
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprint(f)
}
