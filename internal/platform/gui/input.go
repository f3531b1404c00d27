package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/lanes/internal/core"
)

// keyBindings maps window keys to game actions. Same keys as the terminal.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeySpace, core.ActionRandomJump},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionBack},
	{ebiten.KeyB, core.ActionBack},
	{ebiten.KeyQ, core.ActionQuit},
}

// pollKeys records every key pressed since the previous frame.
func pollKeys(frame *core.InputFrame) {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			frame.Set(b.action)
		}
	}
}
