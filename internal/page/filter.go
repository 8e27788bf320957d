package page

import (
	"fmt"
	"time"

	"golang.org/x/net/html"

	"portfolio.dev/internal/dom"
	"portfolio.dev/internal/models"
)

// Default transition delays
const (
	DefaultHideDelay = 300 * time.Millisecond
	DefaultShowDelay = 10 * time.Millisecond
)

// FilterController tracks the selected category and toggles card visibility
type FilterController struct {
	buttons   []*html.Node
	cards     []*html.Node
	active    string
	scheduler Scheduler
	hideDelay time.Duration
	showDelay time.Duration

	// generation per card; a delayed step only runs if no newer transition started
	gen map[*html.Node]int
}

func newFilterController(buttons, cards []*html.Node, s Scheduler, hide, show time.Duration) *FilterController {
	return &FilterController{
		buttons:   buttons,
		cards:     cards,
		active:    models.FilterAll,
		scheduler: s,
		hideDelay: hide,
		showDelay: show,
		gen:       make(map[*html.Node]int, len(cards)),
	}
}

// Active returns the current filter value
func (f *FilterController) Active() string {
	return f.active
}

// Apply selects the filter button carrying value and updates the cards
func (f *FilterController) Apply(value string) error {
	var selected *html.Node
	for _, b := range f.buttons {
		if v, _ := dom.GetAttr(b, "data-filter"); v == value {
			selected = b
			break
		}
	}
	if selected == nil {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, value)
	}

	for _, b := range f.buttons {
		dom.ToggleClass(b, "active", b == selected)
	}
	f.active = value

	for _, card := range f.cards {
		if matches(card, value) {
			f.show(card)
		} else {
			f.hide(card)
		}
	}
	return nil
}

func matches(card *html.Node, value string) bool {
	if value == models.FilterAll {
		return true
	}
	category, _ := dom.GetAttr(card, "data-category")
	return category == value
}

// hide fades the card out, then removes it from layout
func (f *FilterController) hide(card *html.Node) {
	gen := f.bump(card)
	dom.SetStyle(card, "opacity", "0")
	dom.SetStyle(card, "transform", "translateY(20px)")
	f.scheduler.After(f.hideDelay, func() {
		if f.gen[card] == gen {
			dom.SetStyle(card, "display", "none")
		}
	})
}

// show puts the card back in layout, then fades it in
func (f *FilterController) show(card *html.Node) {
	gen := f.bump(card)
	dom.SetStyle(card, "display", "flex")
	f.scheduler.After(f.showDelay, func() {
		if f.gen[card] == gen {
			dom.SetStyle(card, "opacity", "1")
			dom.SetStyle(card, "transform", "translateY(0)")
		}
	})
}

func (f *FilterController) bump(card *html.Node) int {
	f.gen[card]++
	return f.gen[card]
}

// Visible reports whether a card takes part in layout
func Visible(card *html.Node) bool {
	return dom.GetStyle(card, "display") != "none"
}
