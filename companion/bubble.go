package companion

import (
	"strings"

	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

var bubbleSheet = animation.Sheet{
	ID:     asset.SheetTextBox,
	FrameW: parameter.BubbleFrameW,
	FrameH: parameter.BubbleFrameH,
	Scale:  parameter.BubbleScale,
}

const bubblePadding = 8

// Bubble is a speech bubble: open, hold for BubbleAlive seconds, close
// Text that does not fit three lines continues in a new bubble after closing
type Bubble struct {
	engine.Lifecycle
	anchor Anchor
	owner  *Set
	lines  []string
	rest   string
	pos    vmath.Vec2

	elapsed float64
	closing bool
	open    *animation.Animator
	close   *animation.Animator
}

// NewBubble wraps text; owner (may be nil) also receives any continuation bubble
func NewBubble(anchor Anchor, text string, owner *Set) *Bubble {
	lines, rest := Wrap(text, parameter.BubbleMaxWidth, parameter.BubbleGlyphAdvance, parameter.BubbleMaxLines)
	b := &Bubble{
		anchor: anchor,
		owner:  owner,
		lines:  lines,
		rest:   rest,
		open:   animation.Must(bubbleSheet, animation.Once(0, 3, 0.1)),
		close:  animation.Must(bubbleSheet, animation.Once(1, 3, 0.1)),
	}
	b.follow()
	return b
}

// Lines returns the wrapped text shown by this bubble
func (b *Bubble) Lines() []string { return b.lines }

// Overflow returns text deferred to a continuation bubble
func (b *Bubble) Overflow() string { return b.rest }

func (b *Bubble) follow() {
	b.pos = offset(b.anchor, parameter.BubbleOffsetX, parameter.BubbleOffsetY)
}

func (b *Bubble) Update(ctx *engine.Context) {
	b.elapsed += ctx.DT
	b.follow()

	if !b.closing {
		b.open.Advance(ctx.DT)
		if b.elapsed >= parameter.BubbleAlive {
			b.closing = true
		}
		return
	}

	b.close.Advance(ctx.DT)
	if b.close.Completed() {
		if b.rest != "" {
			next := NewBubble(b.anchor, b.rest, b.owner)
			if b.owner != nil {
				b.owner.Add(next)
			}
			ctx.Spawn(engine.Foreground, next)
		}
		b.Kill()
	}
}

func (b *Bubble) Draw(ctx *engine.Context) {
	anim := b.open
	if b.closing {
		anim = b.close
	}
	flip := b.anchor.Facing().Sign() < 0
	if err := anim.Draw(ctx.Renderer, ctx.Image(asset.SheetTextBox), b.pos.X, b.pos.Y, flip); err != nil {
		ctx.Skip(err)
	}
	if b.closing {
		return
	}
	w, h := bubbleSheet.DisplaySize()
	x := b.pos.X - w/2 + bubblePadding
	y := b.pos.Y - h/4
	for i, line := range b.lines {
		ctx.Renderer.DrawText(line, x, y+float64(i)*parameter.BubbleLineStep-parameter.BubbleLineStep/2)
	}
}

// Wrap greedily fills up to maxLines lines no wider than maxWidth
// A single word wider than maxWidth still gets its own line
func Wrap(text string, maxWidth, advance float64, maxLines int) (lines []string, rest string) {
	words := strings.Fields(text)
	var line []string
	width := func(ws []string) float64 {
		return float64(len([]rune(strings.Join(ws, " ")))) * advance
	}

	for i, w := range words {
		candidate := append(line[:len(line):len(line)], w)
		if width(candidate) > maxWidth && len(line) > 0 {
			lines = append(lines, strings.Join(line, " "))
			line = []string{w}
		} else {
			line = candidate
		}
		if len(lines) == maxLines {
			return lines, strings.Join(words[i:], " ")
		}
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return lines, ""
}
