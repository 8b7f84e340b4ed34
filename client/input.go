package client

import (
	"github.com/ConnorK747/RetroGame/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	quitKeys  = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// keyState is the slice of the keyboard the game reads each frame.
type keyState struct {
	pressed      func(ebiten.Key) bool
	justPressed  func(ebiten.Key) bool
	justReleased func(ebiten.Key) bool
}

var keyboard = keyState{
	pressed:      ebiten.IsKeyPressed,
	justPressed:  inpututil.IsKeyJustPressed,
	justReleased: inpututil.IsKeyJustReleased,
}

func anyKey(keys []ebiten.Key, check func(ebiten.Key) bool) bool {
	for _, key := range keys {
		if check(key) {
			return true
		}
	}
	return false
}

func (k keyState) input() world.Input {
	var intents []world.Intent
	if anyKey(leftKeys, k.pressed) {
		intents = append(intents, world.MoveLeft)
	}
	if anyKey(rightKeys, k.pressed) {
		intents = append(intents, world.MoveRight)
	}

	in := world.NewInput(intents...)
	in.JumpPressed = anyKey(jumpKeys, k.justPressed)
	in.JumpReleased = anyKey(jumpKeys, k.justReleased)
	return in
}

func (k keyState) quit() bool {
	return anyKey(quitKeys, k.justPressed)
}
