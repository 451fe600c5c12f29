package content

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// unwrapEnvelope — снимает конверт ответа.
// Списки приходят как {data:{data:[...]}}, одиночные записи — как {data:{...}};
// {data:[...]} тоже допустим. Тело без ключа data возвращается как есть.
func unwrapEnvelope(body []byte) (json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return json.RawMessage("null"), nil
	}

	var outer map[string]json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		if isJSONArray(body) {
			return json.RawMessage(body), nil
		}
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	data, ok := outer["data"]
	if !ok {
		return json.RawMessage(body), nil
	}

	var inner map[string]json.RawMessage
	if err := json.Unmarshal(data, &inner); err == nil {
		if list, ok := inner["data"]; ok && isJSONArray(list) {
			return list, nil
		}
	}
	return data, nil
}

// List — декодирует списочный payload; null → пустой срез.
func List[T any](raw json.RawMessage) ([]T, error) {
	if isEmptyPayload(raw) {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// One — декодирует одиночную запись; пустой payload → ErrNotFound.
func One[T any](raw json.RawMessage) (*T, error) {
	if isEmptyPayload(raw) {
		return nil, ErrNotFound
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &out, nil
}

func isJSONArray(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '['
}

func isEmptyPayload(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "{}", "[]", `""`:
		return true
	}
	return false
}
