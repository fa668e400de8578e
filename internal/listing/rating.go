package listing

import "strings"

type bucket struct {
	label     string
	threshold float64
}

var buckets = []bucket{
	{"4.5+", 4.5},
	{"4.0+", 4.0},
	{"3.5+", 3.5},
}

// RatingLabels returns the minimum-rating choices, highest first.
func RatingLabels() []string {
	out := make([]string, len(buckets))
	for i, b := range buckets {
		out[i] = b.label
	}
	return out
}

// Threshold maps a bucket label to its inclusive lower bound.
func Threshold(label string) (float64, bool) {
	label = strings.TrimSpace(label)
	for _, b := range buckets {
		if b.label == label {
			return b.threshold, true
		}
	}
	return 0, false
}

// NextRating cycles all -> 4.5+ -> 4.0+ -> 3.5+ -> all.
func NextRating(current string) string {
	return cycle(append([]string{All}, RatingLabels()...), current)
}

// NextCategory cycles all -> each of choices -> all.
func NextCategory[C ~string](choices []C, current string) string {
	opts := make([]string, 0, len(choices)+1)
	opts = append(opts, All)
	for _, c := range choices {
		opts = append(opts, string(c))
	}
	return cycle(opts, current)
}

func cycle(opts []string, current string) string {
	for i, o := range opts {
		if o == current {
			return opts[(i+1)%len(opts)]
		}
	}
	// Unknown labels restart the cycle.
	return opts[0]
}
