package gui

import "github.com/NicksCraft/ParadoxLib/pkg/item"

// ClickHandler runs when a viewer clicks the button's slot.
type ClickHandler func(*ClickEvent)

// Button pairs a display stack with an optional click handler.
type Button struct {
	icon    *item.Stack
	handler ClickHandler
}

// NewButton creates a button showing the given stack. Panics on a nil or
// air stack; remove the button instead of blanking its icon.
func NewButton(icon *item.Stack) *Button {
	return &Button{icon: validIcon(icon)}
}

// WithHandler sets the click handler and returns the button for chaining.
func (b *Button) WithHandler(h ClickHandler) *Button {
	b.handler = h
	return b
}

func (b *Button) Icon() *item.Stack { return b.icon }

func (b *Button) SetIcon(icon *item.Stack) { b.icon = validIcon(icon) }

func (b *Button) Handler() ClickHandler { return b.handler }

func (b *Button) SetHandler(h ClickHandler) { b.handler = h }

func validIcon(icon *item.Stack) *item.Stack {
	if icon.IsAir() {
		panic("gui: button icon must not be nil or air")
	}
	return icon
}
