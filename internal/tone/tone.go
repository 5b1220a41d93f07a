// Package tone classifies a complaint's free-text tone label into a
// numeric anger level and one of four ordered severity bands.
package tone

import "strings"

// Band is a coarse anger classification. Bands are ordered:
// calm < annoyed < angry < furious.
type Band string

const (
	Calm    Band = "calm"
	Annoyed Band = "annoyed"
	Angry   Band = "angry"
	Furious Band = "furious"
)

// Bands lists all bands from most to least severe, the order the UI
// presents them in.
var Bands = []Band{Furious, Angry, Annoyed, Calm}

// Assessment is the classification result for one tone string.
type Assessment struct {
	Level int  // 1..10
	Band  Band // consistent with Level: furious >= 8, angry 6-7, annoyed 4-5, calm <= 3
}

// mapping pins each known tone word to a (level, band) pair. Unknown words
// fall through to defaultAssessment.
var mapping = map[string]Assessment{
	"aggressive":  {Level: 10, Band: Furious},
	"threatening": {Level: 9, Band: Furious},

	"frustrated": {Level: 7, Band: Angry},
	"disgusted":  {Level: 7, Band: Angry},
	"betrayed":   {Level: 6, Band: Angry},

	"sarcastic": {Level: 5, Band: Annoyed},
	"confused":  {Level: 4, Band: Annoyed},

	"neutral":    {Level: 3, Band: Calm},
	"passionate": {Level: 3, Band: Calm},
	"humorous":   {Level: 2, Band: Calm},
}

// defaultAssessment is the deliberate neutral fallback for unrecognized
// tones, not an error.
var defaultAssessment = Assessment{Level: 5, Band: Annoyed}

// Classify maps a free-text tone label to an Assessment. Input is trimmed
// and lower-cased before lookup. Classify is total: every string resolves
// to some assessment.
func Classify(tone string) Assessment {
	if a, ok := mapping[strings.ToLower(strings.TrimSpace(tone))]; ok {
		return a
	}
	return defaultAssessment
}

// Meta is the display metadata for a band.
type Meta struct {
	Color string // hex
	Emoji string
	Label string
}

var bandMeta = map[Band]Meta{
	Furious: {Color: "#D62300", Emoji: "🔴", Label: "FURIOUS"},
	Angry:   {Color: "#FF8732", Emoji: "🟠", Label: "ANGRY"},
	Annoyed: {Color: "#FACC15", Emoji: "🟡", Label: "ANNOYED"},
	Calm:    {Color: "#22C55E", Emoji: "🟢", Label: "CALM"},
}

// Metadata returns the display metadata for a band. Unknown bands get the
// annoyed metadata, mirroring the classification fallback.
func (b Band) Metadata() Meta {
	if m, ok := bandMeta[b]; ok {
		return m
	}
	return bandMeta[Annoyed]
}
