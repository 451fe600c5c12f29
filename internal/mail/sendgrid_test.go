package mail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sendgrid/rest"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/pkg/logger"
)

type fakeSender struct {
	got    *sgmail.SGMailV3
	status int
	err    error
}

func (f *fakeSender) SendWithContext(_ context.Context, m *sgmail.SGMailV3) (*rest.Response, error) {
	f.got = m
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status, Body: "{}"}, nil
}

func lead() *domain.Lead {
	return &domain.Lead{
		ID: "lead-1",
		Enquiry: domain.Enquiry{
			Name: "Ann", Mobile: "9876543210", CountryCode: "+91",
			Email: "ann@example.com", Product: "Blaster", Message: "<b>price?</b>",
		},
		SourceURL:  "https://example.com/product/blaster",
		ReceivedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestDeliver_BuildsMessage(t *testing.T) {
	fs := &fakeSender{status: 202}
	sink, err := NewSendGridSinkWithClient(fs, "no-reply@example.com", "sales@example.com", "Acme", logger.NewNop())
	require.NoError(t, err)

	require.NoError(t, sink.Deliver(context.Background(), lead()))
	require.NotNil(t, fs.got)
	require.Equal(t, "New enquiry: Blaster", fs.got.Subject)
	require.Equal(t, "no-reply@example.com", fs.got.From.Address)
	require.Equal(t, "ann@example.com", fs.got.ReplyTo.Address)
	require.Len(t, fs.got.Content, 2)
	require.Contains(t, fs.got.Content[0].Value, "Mobile: +91 9876543210")
	require.Contains(t, fs.got.Content[1].Value, "&lt;b&gt;price?&lt;/b&gt;")
}

func TestDeliver_Rejected(t *testing.T) {
	sink, err := NewSendGridSinkWithClient(&fakeSender{status: 401}, "a@x", "b@x", "", logger.NewNop())
	require.NoError(t, err)
	require.Error(t, sink.Deliver(context.Background(), lead()))
}

func TestDeliver_TransportError(t *testing.T) {
	boom := errors.New("dial")
	sink, err := NewSendGridSinkWithClient(&fakeSender{err: boom}, "a@x", "b@x", "", logger.NewNop())
	require.NoError(t, err)
	require.ErrorIs(t, sink.Deliver(context.Background(), lead()), boom)
}

func TestNewSendGridSink_Validation(t *testing.T) {
	_, err := NewSendGridSink("", "a@x", "b@x", "", logger.NewNop())
	require.Error(t, err)
	_, err = NewSendGridSinkWithClient(&fakeSender{}, "", "b@x", "", logger.NewNop())
	require.Error(t, err)
	_, err = NewSendGridSinkWithClient(&fakeSender{}, "a@x", "", "", logger.NewNop())
	require.Error(t, err)
}
