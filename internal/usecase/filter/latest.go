package filter

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded — результат вытеснен более новым запросом того же просмотра.
var ErrSuperseded = errors.New("request superseded")

type flight struct {
	token  uint64
	cancel context.CancelFunc
}

// Latest — координатор last-write-wins: на один viewID актуален только последний вызов.
// Новый вызов отменяет контекст предыдущего, результат вытесненного отбрасывается.
type Latest[T any] struct {
	mu      sync.Mutex
	next    uint64
	flights map[string]flight
}

func NewLatest[T any]() *Latest[T] {
	return &Latest[T]{flights: make(map[string]flight)}
}

// Do — выполняет fn как самый свежий запрос viewID.
// Пустой viewID — без координации.
func (l *Latest[T]) Do(ctx context.Context, viewID string, fn func(context.Context) (T, error)) (T, error) {
	if viewID == "" {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	l.next++
	token := l.next
	if prev, ok := l.flights[viewID]; ok {
		prev.cancel()
	}
	l.flights[viewID] = flight{token: token, cancel: cancel}
	l.mu.Unlock()

	res, err := fn(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	cur, ok := l.flights[viewID]
	if !ok || cur.token != token {
		var zero T
		return zero, ErrSuperseded
	}
	delete(l.flights, viewID)
	return res, err
}

// InFlight — число просмотров с незавершённым запросом.
func (l *Latest[T]) InFlight() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.flights)
}
