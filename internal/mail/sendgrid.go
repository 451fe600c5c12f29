// Package mail — отправка заявок с сайта письмом через SendGrid.
package mail

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/internal/ports"
)

// Sender — минимальный контракт клиента SendGrid.
type Sender interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

var _ ports.LeadSink = (*SendGridSink)(nil)

type SendGridSink struct {
	client   Sender
	from, to string
	siteName string
	log      ports.Logger
}

func NewSendGridSink(apiKey, from, to, siteName string, log ports.Logger) (*SendGridSink, error) {
	if apiKey == "" {
		return nil, errors.New("sendgrid api key is empty")
	}
	return NewSendGridSinkWithClient(sendgrid.NewSendClient(apiKey), from, to, siteName, log)
}

func NewSendGridSinkWithClient(client Sender, from, to, siteName string, log ports.Logger) (*SendGridSink, error) {
	if from == "" {
		return nil, errors.New("from address is empty")
	}
	if to == "" {
		return nil, errors.New("to address is empty")
	}
	if siteName == "" {
		siteName = "Website"
	}
	return &SendGridSink{client: client, from: from, to: to, siteName: siteName, log: log}, nil
}

func (s *SendGridSink) Name() string { return "sendgrid" }

func (s *SendGridSink) Deliver(ctx context.Context, lead *domain.Lead) error {
	subject, text := compose(lead)
	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail(s.siteName, s.from),
		subject,
		sgmail.NewEmail("", s.to),
		text,
		"<pre>"+html.EscapeString(text)+"</pre>",
	)
	if lead.Enquiry.Email != "" {
		msg.SetReplyTo(sgmail.NewEmail(lead.Enquiry.Name, lead.Enquiry.Email))
	}

	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		s.log.Errorf(ctx, "sendgrid rejected lead=%s status=%d body=%s", lead.ID, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid send failed: status=%d", resp.StatusCode)
	}
	s.log.Infof(ctx, "enquiry mailed lead=%s status=%d", lead.ID, resp.StatusCode)
	return nil
}

func compose(lead *domain.Lead) (subject, body string) {
	e := lead.Enquiry
	subject = "New enquiry"
	if topic := e.Topic(); topic != "" {
		subject += ": " + topic
	}

	var b strings.Builder
	line := func(k, v string) {
		if v != "" {
			fmt.Fprintf(&b, "%s: %s\n", k, v)
		}
	}
	line("Name", e.Name)
	line("Mobile", strings.TrimSpace(e.CountryCode+" "+e.Mobile))
	line("Email", e.Email)
	line("Product", e.Product)
	line("Subject", e.Subject)
	line("Page", lead.SourceURL)
	line("Received", lead.ReceivedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	if e.Message != "" {
		b.WriteString("\n")
		b.WriteString(e.Message)
		b.WriteString("\n")
	}
	return subject, b.String()
}
