package bench

import (
	"math"
	"strings"
	"unicode/utf8"
)

type Counter interface {
	Name() string
	Count(text string) int
}

// CharCounter counts unicode code points.
type CharCounter struct{}

func (CharCounter) Name() string { return "chars" }

func (CharCounter) Count(text string) int {
	return utf8.RuneCountInString(text)
}

// DefaultWordFactor is the average number of sub-word tokens per
// whitespace separated word.
const DefaultWordFactor = 1.3

// WordCounter estimates a token count from whitespace separated words,
// scaled by Factor and rounded up. A zero Factor means DefaultWordFactor.
type WordCounter struct {
	Factor float64
}

func (WordCounter) Name() string { return "words" }

func (c WordCounter) Count(text string) int {
	f := c.Factor
	if f == 0 {
		f = DefaultWordFactor
	}
	return int(math.Ceil(float64(len(strings.Fields(text))) * f))
}

// DefaultCounters returns the counters used when none are given.
func DefaultCounters() []Counter {
	return []Counter{CharCounter{}, WordCounter{}}
}
