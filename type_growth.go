package coinmarket

import "strings"

// Tone tells how a percentage change should be displayed.
type Tone int

const (
	Positive Tone = iota // zero or up
	Negative
)

func (t Tone) String() string {
	if t == Negative {
		return "negative"
	}
	return "positive"
}

// Growth is a percentage change, kept as the source text.
type Growth struct {
	Text string
	Tone Tone
}

// ClassifyGrowth returns the Growth for a percentage change string.
// It is Negative iff the text contains a minus sign anywhere, so "0.00" and ""
// are Positive.
func ClassifyGrowth(text string) Growth {
	if strings.Contains(text, "-") {
		return Growth{Text: text, Tone: Negative}
	}
	return Growth{Text: text, Tone: Positive}
}
