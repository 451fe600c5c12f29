package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/internal/ports"
)

// Проверка, что LeadRepository годится как приёмник заявок.
var _ ports.LeadSink = (*LeadRepository)(nil)

// LeadRepository — журнал принятых заявок в Postgres (pgxpool).
type LeadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository { return &LeadRepository{pool: pool} }

func (r *LeadRepository) Name() string { return "postgres" }

// Deliver — идемпотентная запись лида (повтор с тем же id игнорируется).
func (r *LeadRepository) Deliver(ctx context.Context, lead *domain.Lead) error {
	if lead == nil || lead.ID == "" {
		return errors.New("lead is empty or id is required")
	}
	e := lead.Enquiry
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO leads (
			id, request_id, name, mobile, country_code, email,
			product, subject, message, source_url, received_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
	`, lead.ID, lead.RequestID, e.Name, e.Mobile, e.CountryCode, e.Email,
		e.Product, e.Subject, e.Message, lead.SourceURL, lead.ReceivedAt); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// Get — лид по id; (nil, nil), если записи нет.
func (r *LeadRepository) Get(ctx context.Context, id string) (*domain.Lead, error) {
	var l domain.Lead
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, request_id, name, mobile, country_code, email,
		       product, subject, message, source_url, received_at
		FROM leads WHERE id = $1
	`, id).Scan(&l.ID, &l.RequestID, &l.Enquiry.Name, &l.Enquiry.Mobile, &l.Enquiry.CountryCode,
		&l.Enquiry.Email, &l.Enquiry.Product, &l.Enquiry.Subject, &l.Enquiry.Message,
		&l.SourceURL, &l.ReceivedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select lead: %w", err)
	}
	l.Enquiry.Captcha = true
	return &l, nil
}

// Recent — последние limit лидов, новые первыми.
func (r *LeadRepository) Recent(ctx context.Context, limit int) ([]domain.Lead, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, request_id, name, mobile, country_code, email,
		       product, subject, message, source_url, received_at
		FROM leads ORDER BY received_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select leads: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Lead, 0, limit)
	for rows.Next() {
		var l domain.Lead
		if err := rows.Scan(&l.ID, &l.RequestID, &l.Enquiry.Name, &l.Enquiry.Mobile, &l.Enquiry.CountryCode,
			&l.Enquiry.Email, &l.Enquiry.Product, &l.Enquiry.Subject, &l.Enquiry.Message,
			&l.SourceURL, &l.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		l.Enquiry.Captcha = true
		out = append(out, l)
	}
	return out, rows.Err()
}
