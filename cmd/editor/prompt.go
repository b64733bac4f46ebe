package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Prompt is a modal single-line text input. Enter submits, Escape cancels.
type Prompt struct {
	open    bool
	label   string
	input   string
	onEnter func(string)
	chars   []rune
}

func NewPrompt() *Prompt { return &Prompt{} }

func (p *Prompt) IsOpen() bool { return p.open }

func (p *Prompt) Open(label, initial string, onEnter func(string)) {
	p.label = label
	p.input = initial
	p.onEnter = onEnter
	p.open = true
}

func (p *Prompt) Close() {
	p.open = false
	p.label = ""
	p.input = ""
	p.onEnter = nil
}

// Update consumes input while the prompt is open and reports whether it
// still is, so callers can skip their own input handling.
func (p *Prompt) Update() bool {
	if !p.open {
		return false
	}
	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		if r == '\n' || r == '\r' {
			continue
		}
		p.input += string(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(p.input) > 0 {
		runes := []rune(p.input)
		p.input = string(runes[:len(runes)-1])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		// Closed first so the callback may chain another prompt.
		cur, cb := p.input, p.onEnter
		p.open = false
		if cb != nil {
			cb(cur)
		}
		if p.open {
			return true
		}
		p.Close()
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Close()
		return false
	}
	return true
}

func (p *Prompt) Draw(screen *ebiten.Image) {
	if !p.open {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	vector.FillRect(screen, 0, float32(sh/2-24), float32(sw), 48, color.RGBA{A: 0xcc}, false)
	label := p.label
	if label == "" {
		label = "Input:"
	}
	ebitenutil.DebugPrintAt(screen, label+" "+p.input+"_", 16, sh/2-8)
}
