package validate

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/internal/ports"
)

// Проверка, что EnquiryValidator удовлетворяет интерфейсу EnquiryValidator.
var _ ports.EnquiryValidator = (*EnquiryValidator)(nil)

// ErrInvalidEnquiry — базовая (sentinel error) ошибка валидации заявки.
var ErrInvalidEnquiry = errors.New("enquiry validation failed")

// MaxMessageLen — ограничение длины сообщения в рунах.
const MaxMessageLen = 2000

var (
	mobilePattern      = regexp.MustCompile(`^[0-9]{6,15}$`)
	countryCodePattern = regexp.MustCompile(`^\+[0-9]{1,4}$`)
	mobileSeparators   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// ValidationError — ошибка конкретного поля формы.
// Сопоставляется с ErrInvalidEnquiry через errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidEnquiry.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidEnquiry }

// EnquiryValidator — структура для валидации заявок.
type EnquiryValidator struct{}

// NewEnquiryValidator — конструктор EnquiryValidator.
func NewEnquiryValidator() *EnquiryValidator { return &EnquiryValidator{} }

// Normalize — обрезает пробелы и убирает разделители из номера телефона.
func (v *EnquiryValidator) Normalize(e *domain.Enquiry) {
	e.Name = strings.TrimSpace(e.Name)
	e.Mobile = mobileSeparators.Replace(strings.TrimSpace(e.Mobile))
	e.Email = strings.TrimSpace(e.Email)
	e.Message = strings.TrimSpace(e.Message)
	e.Product = strings.TrimSpace(e.Product)
	e.Subject = strings.TrimSpace(e.Subject)
	e.CountryCode = strings.TrimSpace(e.CountryCode)
	if e.CountryCode != "" && !strings.HasPrefix(e.CountryCode, "+") {
		e.CountryCode = "+" + e.CountryCode
	}
}

// Validate — проверяет поля заявки; возвращает *ValidationError на первой проблеме.
func (v *EnquiryValidator) Validate(_ context.Context, e *domain.Enquiry) error {
	if e == nil {
		return &ValidationError{Field: "enquiry", Reason: "is empty"}
	}
	v.Normalize(e)

	switch {
	case e.Name == "":
		return &ValidationError{Field: "name", Reason: "is required"}
	case e.Mobile == "":
		return &ValidationError{Field: "mobile", Reason: "is required"}
	case !mobilePattern.MatchString(e.Mobile):
		return &ValidationError{Field: "mobile", Reason: "must be 6-15 digits"}
	case e.CountryCode == "":
		return &ValidationError{Field: "country_code", Reason: "is required"}
	case !countryCodePattern.MatchString(e.CountryCode):
		return &ValidationError{Field: "country_code", Reason: "is malformed"}
	case utf8.RuneCountInString(e.Message) > MaxMessageLen:
		return &ValidationError{Field: "message", Reason: fmt.Sprintf("must be at most %d characters", MaxMessageLen)}
	case !e.Captcha:
		return &ValidationError{Field: "captcha", Reason: "verification required"}
	}

	if e.Email != "" {
		if _, err := mail.ParseAddress(e.Email); err != nil {
			return &ValidationError{Field: "email", Reason: "is malformed"}
		}
	}
	return nil
}
