package analyzer

import (
	"math"

	"github.com/mikey/comm-analyzer/internal/core"
	"github.com/mikey/comm-analyzer/internal/utils"
)

// Weights and thresholds of the formality signal. Fixed heuristics, kept
// exactly as tuned; tests pin them.
const (
	formalWeight      = 4.0
	informalWeight    = 1.5
	contractionWeight = 3.0

	formalThreshold   = 0.10
	informalThreshold = -0.15

	// The raw signal is clamped to [-signalBound, signalBound] before it is
	// rescaled to the public 0-100 style score.
	signalBound = 0.7

	neutralStyleScore = 50.0
)

var formalKeywords = wordSet(
	"furthermore", "moreover", "hence", "thus", "consequently", "therefore",
	"sincerely", "regards", "cordially", "to whom it may concern", "pursuant to",
	"in accordance with", "commence", "terminate", "endeavor", "facilitate",
	"utilize", "prioritize", "hereby", "herein", "thereby", "therein", "herewith",
	"acquisition", "disbursement", "ameliorate", "concerning", "regarding", "notwithstanding",
	"respectfully", "additionally", "nevertheless", "subsequently",
	"heretofore", "hereunder", "thereafter", "thereupon", "whereby", "whereas",
	"inquire", "advise", "confirm", "request", "duly", "thereof",
	"accordingly", "according", "wherefore", "whereupon",
)

var informalKeywords = wordSet(
	"hey", "hi", "lol", "brb", "btw", "gonna", "wanna", "lemme", "y'all",
	"asap", "imo", "fyi", "kinda", "sorta", "chill", "dude", "bro", "yeah",
	"nah", "awesome", "cool", "super", "greetings", "whats up", "cya", "np", "omg",
	"tho", "dunno", "nite", "pls", "thx", "u", "ur", "r", "lmao", "rofl",
	"gotta", "k", "cuz", "ya", "coz", "sup", "yo",
)

var contractions = wordSet(
	"i'm", "you're", "he's", "she's", "it's", "we're", "they're", "i've",
	"you've", "we've", "they've", "i'd", "you'd", "he'd", "she'd", "we'd",
	"they'd", "i'll", "you'll", "he'll", "she'll", "it'll", "we'll", "they'll",
	"isn't", "aren't", "wasn't", "weren't", "hasn't", "haven't", "hadn't",
	"won't", "wouldn't", "don't", "doesn't", "didn't", "can't", "couldn't",
	"shouldn't", "mightn't", "mustn't", "shan't", "needn't",
)

// Style scores the formality of text on a 0-100 scale.
type Style struct{}

// NewStyle creates a new style analyzer.
func NewStyle() *Style {
	return &Style{}
}

// Analyze returns the style score and formality label for the text.
// Input yielding no tokens gets the neutral default of 50.0 / "neutral".
func (s *Style) Analyze(text string) (float64, string) {
	words := utils.TokenizeWithApostrophes(text)
	if len(words) == 0 {
		return neutralStyleScore, core.FormalityNeutral
	}

	formal := 0
	informal := 0
	contraction := 0
	for _, word := range words {
		if _, ok := formalKeywords[word]; ok {
			formal++
		} else if _, ok := informalKeywords[word]; ok {
			informal++
		}
		if _, ok := contractions[word]; ok {
			contraction++
		}
	}

	signal := (float64(formal)*formalWeight -
		float64(informal)*informalWeight -
		float64(contraction)*contractionWeight) / float64(len(words))

	formality := core.FormalityNeutral
	if signal > formalThreshold {
		formality = core.FormalityFormal
	} else if signal < informalThreshold {
		formality = core.FormalityInformal
	}

	clamped := math.Max(-signalBound, math.Min(signalBound, signal))
	score := math.Round((clamped+signalBound)/(2*signalBound)*100*100) / 100
	score = math.Max(0.0, math.Min(100.0, score))

	return score, formality
}
