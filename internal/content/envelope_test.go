package content

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestUnwrapEnvelope(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"paginated list", `{"data":{"current_page":1,"data":[{"id":1}]}}`, `[{"id":1}]`},
		{"single record", `{"data":{"title":"x","products":[]}}`, `{"title":"x","products":[]}`},
		{"plain list", `{"data":[{"id":2}]}`, `[{"id":2}]`},
		{"bare array", `[1,2]`, `[1,2]`},
		{"no data key", `{"title":"y"}`, `{"title":"y"}`},
		{"empty body", ``, `null`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := unwrapEnvelope([]byte(tc.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("want %s, got %s", tc.want, got)
			}
		})
	}
}

func TestUnwrapEnvelope_Invalid(t *testing.T) {
	if _, err := unwrapEnvelope([]byte(`{broken`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestOneAndList_Empty(t *testing.T) {
	type rec struct {
		Title string `json:"title"`
	}
	if _, err := One[rec](json.RawMessage(`null`)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("One(null): want ErrNotFound, got %v", err)
	}
	l, err := List[rec](json.RawMessage(`null`))
	if err != nil || l == nil || len(l) != 0 {
		t.Fatalf("List(null): want empty non-nil slice, got %v %v", l, err)
	}
}

func TestList_SchemaMismatch(t *testing.T) {
	type rec struct {
		Title string `json:"title"`
	}
	if _, err := List[rec](json.RawMessage(`{"title":"not a list"}`)); err == nil {
		t.Fatalf("expected schema error")
	}
}
