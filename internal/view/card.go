package view

import (
	"time"

	"github.com/five82/tagdeck/internal/format"
	"github.com/five82/tagdeck/internal/links"
)

// Card is the display form of one link. Fields hold raw text; each renderer
// escapes for its own medium.
type Card struct {
	URL    string
	Domain string
	Note   string
	Tags   []string
	Date   string
	Source string
}

// NewCard builds a card, degrading per field instead of failing.
func NewCard(l links.Link, now time.Time) Card {
	created, ok := l.Created()
	tags := l.Tags
	if tags == nil {
		tags = []string{}
	}
	return Card{
		URL:    l.URL,
		Domain: format.Domain(l.URL),
		Note:   l.Note,
		Tags:   tags,
		Date:   format.LinkDate(l.CreatedAt, created, ok, now),
		Source: l.Source,
	}
}

// NewCards builds cards in collection order.
func NewCards(items []links.Link, now time.Time) []Card {
	cards := make([]Card, 0, len(items))
	for _, l := range items {
		cards = append(cards, NewCard(l, now))
	}
	return cards
}

// ClickTarget is the element a pointer activation landed on inside a card.
type ClickTarget int

const (
	TargetCard ClickTarget = iota
	TargetAnchor
	TargetTag
)

// CardClickOpens reports whether the card-level handler should open the link.
// Anchors (the primary link and tag chips) handle their own activation.
func CardClickOpens(target ClickTarget) bool {
	return target == TargetCard
}
