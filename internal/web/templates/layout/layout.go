// Package layout holds the page shell shared by every web page.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/drophunt/internal/model"
)

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    string // success, error or info
	Message string
}

// PageData carries what the shell needs to render around a page body
type PageData struct {
	Title  string
	Flash  *FlashMessage
	Player *model.Player
}

// Base wraps body in the document shell
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Raw(`<title>`)
		if data.Title != "" {
			hw.Text(data.Title)
			hw.Raw(` | `)
		}
		hw.Raw(`Drop Hunt</title><link rel="stylesheet" href="/static/style.css"></head><body><header class="nav"><a href="/" class="brand">Drop Hunt</a>`)
		if data.Player != nil {
			hw.Raw(`<span class="player-name">`)
			hw.Text(data.Player.DisplayName)
			hw.Raw(`</span><form method="post" action="/auth/logout" class="inline"><button type="submit">New guest</button></form>`)
		}
		hw.Raw(`</header>`)
		if data.Flash != nil {
			hw.Raw(`<div class="flash flash-`)
			hw.Text(data.Flash.Type)
			hw.Raw(`">`)
			hw.Text(data.Flash.Message)
			hw.Raw(`</div>`)
		}
		hw.Raw(`<main>`)
		if hw.Err() != nil {
			return hw.Err()
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		hw.Raw(`</main></body></html>`)
		return hw.Err()
	})
}

// Writer writes markup, escaping text, and remembers the first error
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s unescaped
func (hw *Writer) Raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// Text writes s HTML-escaped
func (hw *Writer) Text(s string) {
	hw.Raw(templ.EscapeString(s))
}

// Err returns the first write error
func (hw *Writer) Err() error {
	return hw.err
}
