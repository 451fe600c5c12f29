package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEvent — сообщение не является событием изменения контента.
var ErrInvalidEvent = errors.New("invalid content event")

// Действия над контентом; ActionFlush сбрасывает кэш без привязки к ресурсу.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionFlush  = "flush"
)

// ChangeEvent — событие CMS: ресурс изменился, кэш ответов устарел.
type ChangeEvent struct {
	Resource string `json:"resource"`
	Slug     string `json:"slug,omitempty"`
	Action   string `json:"action"`
}

// ParseChangeEvent — разбор и проверка события. Ошибка всегда оборачивает ErrInvalidEvent.
func ParseChangeEvent(raw []byte) (ChangeEvent, error) {
	var ev ChangeEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return ChangeEvent{}, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	ev.Action = strings.ToLower(strings.TrimSpace(ev.Action))
	ev.Resource = strings.TrimSpace(ev.Resource)

	switch ev.Action {
	case ActionFlush:
		return ev, nil
	case ActionCreate, ActionUpdate, ActionDelete:
		if ev.Resource == "" {
			return ChangeEvent{}, fmt.Errorf("%w: resource is required for %q", ErrInvalidEvent, ev.Action)
		}
		return ev, nil
	default:
		return ChangeEvent{}, fmt.Errorf("%w: unknown action %q", ErrInvalidEvent, ev.Action)
	}
}
