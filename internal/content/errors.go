package content

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound — запись отсутствует (404 или пустой data у одиночного ресурса).
	ErrNotFound = errors.New("content not found")

	// ErrTimeout — контент-API не ответил за отведённое время.
	ErrTimeout = errors.New("content api timeout")
)

// UpstreamError — ошибка обращения к контент-API.
// Status == 0 означает сетевую ошибку или таймаут (см. Timeout).
type UpstreamError struct {
	Status   int
	Resource string
	Timeout  bool
	Err      error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("upstream %s: timeout", e.Resource)
	case e.Status == 0 && e.Err != nil:
		return fmt.Sprintf("upstream %s: %v", e.Resource, e.Err)
	default:
		return fmt.Sprintf("upstream %s: status %d", e.Resource, e.Status)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Is — 404 совпадает с ErrNotFound, таймаут — с ErrTimeout.
func (e *UpstreamError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrTimeout:
		return e.Timeout
	}
	return false
}

// StatusCode — HTTP-статус, которым страница сообщает об ошибке загрузки.
func StatusCode(err error) int {
	var ue *UpstreamError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &ue) && ue.Status >= 400 && ue.Status <= 599:
		return ue.Status
	default:
		return http.StatusInternalServerError
	}
}
