package usecase

import (
	"context"

	"enrollment-assistant/internal/task"
)

const defaultObserverBuffer = 16

// Subscribe implements task.UseCase.
func (uc *implUseCase) Subscribe(buffer int) (<-chan task.Event, func()) {
	if buffer <= 0 {
		buffer = defaultObserverBuffer
	}
	ch := make(chan task.Event, buffer)

	uc.subsMu.Lock()
	id := uc.nextSub
	uc.nextSub++
	uc.subs[id] = ch
	uc.subsMu.Unlock()

	return ch, func() {
		uc.subsMu.Lock()
		defer uc.subsMu.Unlock()
		if sub, ok := uc.subs[id]; ok {
			delete(uc.subs, id)
			close(sub)
		}
	}
}

// publish delivers an event to every observer without blocking. A full
// observer misses the event.
func (uc *implUseCase) publish(typ task.EventType, t task.Task) {
	uc.subsMu.Lock()
	defer uc.subsMu.Unlock()

	for id, ch := range uc.subs {
		select {
		case ch <- task.Event{Type: typ, Task: t.Clone()}:
		default:
			uc.l.Warnf(context.Background(), "task observers: subscriber %d is full, dropped %s event for %s", id, typ, t.ID)
		}
	}
}
