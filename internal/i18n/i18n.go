// Package i18n registers the table and report texts with x/text/message.
package i18n

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RenzoDavila27/Truco-AI/internal/engine"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Default is the language used when none is configured.
var Default = language.Spanish

// Supported lists the languages with a full catalog, Default first.
var Supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(Supported)

func init() {
	for tag, messages := range catalogs {
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := message.SetString(tag, key, messages[key]); err != nil {
				panic(fmt.Sprintf("register %s %q: %v", tag, key, err))
			}
		}
	}
}

// Parse maps a language name such as "es", "en-US" or "english" onto one
// of the supported tags.
func Parse(name string) (language.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Default, nil
	}
	switch strings.ToLower(name) {
	case "spanish", "espanol", "español":
		return language.Spanish, nil
	case "english", "ingles", "inglés":
		return language.English, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return Default, fmt.Errorf("parse language %q: %w", name, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default, fmt.Errorf("unsupported language %q", name)
	}
	return Supported[idx], nil
}

// NewPrinter returns a printer for tag.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Action returns the label of a.
func Action(p *message.Printer, a engine.Action) string {
	if !a.Valid() {
		return a.String()
	}
	return p.Sprintf("action." + strings.ToLower(a.String()))
}

// Card returns c spelled out, e.g. "1 de espada".
func Card(p *message.Printer, c engine.Card) string {
	return p.Sprintf("card.label", int(c.Rank), p.Sprintf("suit."+c.Suit.String()))
}

// TrucoLevel names an accepted truco level.
func TrucoLevel(p *message.Printer, level int) string {
	return p.Sprintf(fmt.Sprintf("truco.level.%d", min(max(level, 0), 3)))
}

// EnvidoLevel names an envido display level.
func EnvidoLevel(p *message.Printer, level int) string {
	return p.Sprintf(fmt.Sprintf("envido.level.%d", min(max(level, 0), 3)))
}

// Seat names a seat, e.g. "J0".
func Seat(p *message.Printer, seat engine.Player) string {
	return p.Sprintf("seat.label", int(seat))
}
