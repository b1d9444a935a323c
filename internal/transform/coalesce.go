package transform

import (
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// isoLayout matches the millisecond precision ISO-8601 form the dashboard expects,
// e.g. 2025-03-31T00:00:00.000Z.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// ISO renders t in UTC with millisecond precision.
func ISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// lookup returns the first present, non-null value among keys. It accepts the
// document shapes the driver may hand back for an embedded document.
func lookup(doc any, keys ...string) (any, bool) {
	for _, k := range keys {
		var (
			v  any
			ok bool
		)
		switch d := doc.(type) {
		case bson.M:
			v, ok = d[k]
		case map[string]any:
			v, ok = d[k]
		case bson.D:
			for _, e := range d {
				if e.Key == k {
					v, ok = e.Value, true
					break
				}
			}
		}
		if ok && v != nil {
			if _, null := v.(primitive.Null); !null {
				return v, true
			}
		}
	}
	return nil, false
}

// toFloat converts any numeric BSON value (or numeric string) to a finite float64.
// Non-numeric and non-finite values report false.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case int:
		f = float64(n)
	case primitive.Decimal128:
		p, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, false
		}
		f = p
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = p
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Float returns the first usable numeric value among keys, or 0.
func Float(doc any, keys ...string) float64 {
	v, ok := lookup(doc, keys...)
	if !ok {
		return 0
	}
	f, _ := toFloat(v)
	return f
}

// Int returns the first usable numeric value among keys truncated to int, or 0.
func Int(doc any, keys ...string) int {
	return int(Float(doc, keys...))
}

// String returns the first value among keys rendered as text, or def.
// Dates render as ISO-8601.
func String(doc any, def string, keys ...string) string {
	v, ok := lookup(doc, keys...)
	if !ok {
		return def
	}
	if s, ok := text(v); ok && s != "" {
		return s
	}
	return def
}

func text(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case primitive.DateTime, time.Time:
		ts, ok := toTime(t)
		return ISO(ts), ok
	case primitive.ObjectID:
		return t.Hex(), true
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time(), true
	case time.Time:
		return t, true
	}
	return time.Time{}, false
}

// variants expands a PascalCase field name into the spellings found across
// the stored documents: as-is, lowerCamel and snake_case.
func variants(key string) []string {
	if key == "" {
		return nil
	}
	lower := strings.ToLower(key[:1]) + key[1:]

	var b strings.Builder
	for i, r := range key {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	snake := strings.ToLower(b.String())

	out := []string{key, lower}
	if snake != lower {
		out = append(out, snake)
	}
	return out
}
