// Package pages renders the web pages.
package pages

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/drophunt/internal/api/response"
	"github.com/mcoot/drophunt/internal/model"
	"github.com/mcoot/drophunt/internal/web/templates/layout"
)

// PuzzleData is the view of today's puzzle page
type PuzzleData struct {
	layout.PageData
	Puzzle response.Puzzle
}

// CanReveal reports whether the reveal button should be offered
func (d PuzzleData) CanReveal() bool {
	return d.Playable() && d.Puzzle.CluesRevealed < d.Puzzle.RevealCap
}

// Playable reports whether the player can still reveal or guess
func (d PuzzleData) Playable() bool {
	return d.Puzzle.Status == string(model.SessionStatusReady) && !d.Puzzle.IsGameWon
}

// Puzzle renders today's puzzle page
func Puzzle(data PuzzleData) templ.Component {
	return layout.Base(data.PageData, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := layout.NewWriter(w)
		p := data.Puzzle

		hw.Raw(`<section id="puzzle" data-seed="`)
		hw.Text(p.Seed)
		hw.Raw(`" data-status="`)
		hw.Text(p.Status)
		hw.Raw(`"><h1>Today's drop</h1>`)

		switch p.Status {
		case string(model.SessionStatusNoProduct):
			hw.Raw(`<p id="no-product">No product to hunt today. Check back tomorrow.</p></section>`)
			return hw.Err()
		case string(model.SessionStatusAlreadyPlayed):
			hw.Raw(`<p id="already-played">You've already played today. Come back tomorrow for a new drop.</p>`)
		}

		hw.Raw(`<dl class="meta"><dt>Clues</dt><dd id="clues-revealed">`)
		hw.Text(fmt.Sprintf("%d / %d", len(p.Clues), p.TotalClues))
		hw.Raw(`</dd><dt>Attempts</dt><dd id="attempts">`)
		hw.Text(strconv.Itoa(p.Attempts))
		hw.Raw(`</dd><dt>Time</dt><dd id="elapsed">`)
		hw.Text(p.Elapsed)
		hw.Raw(`</dd></dl>`)

		hw.Raw(`<ol id="clues">`)
		for _, c := range p.Clues {
			hw.Raw(`<li class="clue clue-`)
			hw.Text(c.Difficulty)
			hw.Raw(`" data-type="`)
			hw.Text(c.Type)
			hw.Raw(`">`)
			hw.Text(c.Text)
			hw.Raw(`</li>`)
		}
		hw.Raw(`</ol>`)

		if data.CanReveal() {
			hw.Raw(`<form id="reveal-form" method="post" action="/reveal"><button type="submit">Reveal another clue</button></form>`)
		}

		if data.Playable() {
			hw.Raw(`<form id="guess-form" method="post" action="/guess"><ul class="candidates">`)
			for _, c := range p.Candidates {
				hw.Raw(`<li class="candidate"><label><input type="radio" name="product_id" value="`)
				hw.Text(c.ID)
				hw.Raw(`"> <img src="`)
				hw.Text(c.Image)
				hw.Raw(`" alt=""> <span class="title">`)
				hw.Text(c.Title)
				hw.Raw(`</span> <span class="vendor">`)
				hw.Text(c.Vendor)
				hw.Raw(`</span></label></li>`)
			}
			hw.Raw(`</ul><button type="submit">Guess</button></form>`)
		}

		if p.Product != nil {
			renderSolved(hw, p)
		}

		if p.Stats != nil {
			hw.Raw(`<aside id="stats"><h2>Your record</h2><p>Streak: <span id="streak">`)
			hw.Text(strconv.Itoa(p.Stats.Streak))
			hw.Raw(`</span></p>`)
			if p.Stats.Score != nil {
				hw.Raw(`<p>Best today: <span id="stats-score">`)
				hw.Text(strconv.Itoa(*p.Stats.Score))
				hw.Raw(`</span></p>`)
			}
			hw.Raw(`</aside>`)
		}

		hw.Raw(`<form id="reset-form" method="post" action="/reset"><button type="submit">Reset my data</button></form></section>`)
		return hw.Err()
	}))
}

func renderSolved(hw *layout.Writer, p response.Puzzle) {
	hw.Raw(`<div id="solved"><h2>You found it!</h2>`)
	if p.Score != nil {
		hw.Raw(`<p>Score: <strong id="score">`)
		hw.Text(strconv.Itoa(*p.Score))
		hw.Raw(`</strong></p>`)
	}
	hw.Raw(`<div class="product"><img src="`)
	hw.Text(p.Product.Image)
	hw.Raw(`" alt="`)
	hw.Text(p.Product.Title)
	hw.Raw(`"><h3 id="product-title">`)
	hw.Text(p.Product.Title)
	hw.Raw(`</h3><p class="vendor">`)
	hw.Text(p.Product.Vendor)
	hw.Raw(`</p><p class="price">`)
	hw.Text(p.Product.Price)
	hw.Raw(`</p></div></div>`)
}

// Error renders a plain error page
func Error(data layout.PageData, message string) templ.Component {
	return layout.Base(data, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := layout.NewWriter(w)
		hw.Raw(`<section id="error"><h1>Something went wrong</h1><p>`)
		hw.Text(message)
		hw.Raw(`</p><p><a href="/">Back to today's puzzle</a></p></section>`)
		return hw.Err()
	}))
}
