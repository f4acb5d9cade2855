// Package symbol reads lead-sheet chord symbols such as "Bb-7", "F#7(#9)"
// or "EØ" into harmonies.
package symbol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/changes/chord"
	"github.com/jsphweid/changes/note"
)

var ErrBadSymbol = errors.New("bad chord symbol")

type token struct {
	text string
	mod  chord.Modifier
}

// Matched in order, so a token must come before any token that is a prefix
// of it.
var tokens = []token{
	{"maj7", chord.ModMajorSeven},
	{"Δ7", chord.ModMajorSeven},
	{"Δ", chord.ModMajorSeven},
	{"M7", chord.ModMajorSeven},
	{"M", chord.ModMajorThird},
	{"min", chord.ModMinorThird},
	{"m", chord.ModMinorThird},
	{"-", chord.ModMinorThird},
	{"dim7", chord.ModDiminished},
	{"dim", chord.ModDiminished},
	{"°7", chord.ModDiminished},
	{"°", chord.ModDiminished},
	{"ø7", chord.ModHalfDiminished},
	{"ø", chord.ModHalfDiminished},
	{"Ø7", chord.ModHalfDiminished},
	{"Ø", chord.ModHalfDiminished},
	{"aug", chord.ModSharpFive},
	{"+", chord.ModSharpFive},
	{"#5", chord.ModSharpFive},
	{"b5", chord.ModFlatFive},
	{"7", chord.ModDominantSeven},
	{"b9", chord.ModFlatNine},
	{"#9", chord.ModSharpNine},
	{"#11", chord.ModSharpEleven},
}

var cleaner = strings.NewReplacer(
	"\U0001D12A", "##",
	"\U0001D12B", "bb",
	note.FlatSign, "b",
	note.SharpSign, "#",
	"(", "",
	")", "",
	" ", "",
	"\t", "",
)

// Modifiers returns the modifiers spelled by a symbol's suffix, without the
// root.
func Modifiers(suffix string) ([]chord.Modifier, error) {
	rest := cleaner.Replace(suffix)
	mods, ok := tokenize(rest)
	if !ok {
		return nil, fmt.Errorf("%w: cannot read %q", ErrBadSymbol, suffix)
	}
	return mods, nil
}

func tokenize(s string) ([]chord.Modifier, bool) {
	var mods []chord.Modifier
	for len(s) > 0 {
		matched := false
		for _, t := range tokens {
			if strings.HasPrefix(s, t.text) {
				mods = append(mods, t.mod)
				s = s[len(t.text):]
				matched = true
				break
			}
		}
		if !matched {
			return nil, false
		}
	}
	return mods, true
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'G') || (b >= 'a' && b <= 'g')
}

// Parse reads a chord symbol. A symbol with no suffix is a bare note; an
// accidental run after the root letter is read as long as the rest of the
// symbol still makes sense, so "Cb5" is C with a flat five.
func Parse(s string) (chord.Harmony, error) {
	clean := cleaner.Replace(strings.TrimSpace(s))
	if clean == "" {
		return chord.Harmony{}, fmt.Errorf("%w: empty", ErrBadSymbol)
	}
	if !isLetter(clean[0]) {
		return chord.Harmony{}, fmt.Errorf("%w: %q does not start with a note letter", ErrBadSymbol, s)
	}

	run := 0
	if len(clean) > 1 && (clean[1] == '#' || clean[1] == 'b') {
		run = 1
		if len(clean) > 2 && clean[2] == clean[1] {
			run = 2
		}
	}

	for k := run; k >= 0; k-- {
		mods, ok := tokenize(clean[1+k:])
		if !ok {
			continue
		}

		root, err := note.Lookup(clean[:1+k])
		if err != nil {
			return chord.Harmony{}, err
		}
		if len(mods) == 0 {
			return chord.FromNote(root), nil
		}

		c, err := chord.Classify(root, mods...)
		if err != nil {
			return chord.Harmony{}, err
		}
		return chord.FromChord(c), nil
	}

	return chord.Harmony{}, fmt.Errorf("%w: cannot read %q", ErrBadSymbol, s)
}

// ParseAll parses each symbol, stopping at the first failure.
func ParseAll(symbols []string) ([]chord.Harmony, error) {
	res := make([]chord.Harmony, 0, len(symbols))
	for _, s := range symbols {
		h, err := Parse(s)
		if err != nil {
			return nil, err
		}
		res = append(res, h)
	}
	return res, nil
}
