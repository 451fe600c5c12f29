package kafka_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	mykafka "github.com/Gunvolt24/catalog_site/internal/kafka"
)

func TestParseChangeEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    mykafka.ChangeEvent
		wantErr bool
	}{
		{"update", `{"resource":"product","slug":"blaster","action":"update"}`,
			mykafka.ChangeEvent{Resource: "product", Slug: "blaster", Action: mykafka.ActionUpdate}, false},
		{"action normalized", `{"resource":" blog ","action":" DELETE "}`,
			mykafka.ChangeEvent{Resource: "blog", Action: mykafka.ActionDelete}, false},
		{"flush without resource", `{"action":"flush"}`,
			mykafka.ChangeEvent{Action: mykafka.ActionFlush}, false},
		{"create without resource", `{"action":"create"}`, mykafka.ChangeEvent{}, true},
		{"unknown action", `{"resource":"faq","action":"explode"}`, mykafka.ChangeEvent{}, true},
		{"not json", `oops`, mykafka.ChangeEvent{}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := mykafka.ParseChangeEvent([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, mykafka.ErrInvalidEvent))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
