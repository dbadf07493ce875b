package gui

// Priority orders handler execution for a single event. Lower priorities
// run first; Monitor runs last and should only observe.
type Priority int

const (
	PriorityLowest Priority = iota
	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityHighest
	PriorityMonitor
)

const numPriorities = int(PriorityMonitor) + 1

// EventBus registers interaction handlers. The Router attaches itself to
// one; hosts either implement this or embed a Dispatcher.
type EventBus interface {
	OnClick(p Priority, fn func(*ClickEvent))
	OnDrag(p Priority, fn func(*DragEvent))
	OnClose(p Priority, fn func(*CloseEvent))
}

// Dispatcher is an in-memory EventBus. Handlers run synchronously on the
// firing goroutine, in priority order and then registration order. It is
// not safe for concurrent registration and firing.
type Dispatcher struct {
	clicks [numPriorities][]func(*ClickEvent)
	drags  [numPriorities][]func(*DragEvent)
	closes [numPriorities][]func(*CloseEvent)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) OnClick(p Priority, fn func(*ClickEvent)) {
	d.clicks[p] = append(d.clicks[p], fn)
}

func (d *Dispatcher) OnDrag(p Priority, fn func(*DragEvent)) {
	d.drags[p] = append(d.drags[p], fn)
}

func (d *Dispatcher) OnClose(p Priority, fn func(*CloseEvent)) {
	d.closes[p] = append(d.closes[p], fn)
}

// FireClick runs every click handler against e. The caller reads the
// event's Result afterwards.
func (d *Dispatcher) FireClick(e *ClickEvent) {
	for _, fns := range d.clicks {
		for _, fn := range fns {
			fn(e)
		}
	}
}

func (d *Dispatcher) FireDrag(e *DragEvent) {
	for _, fns := range d.drags {
		for _, fn := range fns {
			fn(e)
		}
	}
}

func (d *Dispatcher) FireClose(e *CloseEvent) {
	for _, fns := range d.closes {
		for _, fn := range fns {
			fn(e)
		}
	}
}
