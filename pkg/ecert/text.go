package ecert

import "strings"

// Wrap breaks text into lines no wider than maxWidth at the given size. Words are never
// split, so a single word wider than maxWidth occupies a line of its own. Runs of
// whitespace between words collapse to one space.
func Wrap(text string, metrics FontMetrics, size, maxWidth float64) ([]string, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	// Measure every word up front so unencodable glyphs fail even in single-word names.
	for _, w := range words {
		if _, err := metrics.TextWidth(w, size); err != nil {
			return nil, err
		}
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		candidate := current + " " + word
		width, err := metrics.TextWidth(candidate, size)
		if err != nil {
			return nil, err
		}

		if width <= maxWidth {
			current = candidate
			continue
		}

		lines = append(lines, current)
		current = word
	}

	return append(lines, current), nil
}
