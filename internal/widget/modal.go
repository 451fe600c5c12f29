package widget

import "net/url"

// ModalKind — вид открытой модалки.
type ModalKind int

const (
	ModalClosed ModalKind = iota
	ModalEnquiry
	ModalQuickView
	ModalStatus
)

func (k ModalKind) String() string {
	switch k {
	case ModalEnquiry:
		return "enquiry"
	case ModalQuickView:
		return "quickview"
	case ModalStatus:
		return "status"
	default:
		return "closed"
	}
}

// ProductRef — товар, по которому открыта модалка.
type ProductRef struct {
	Slug  string
	Title string
	Image string
}

// StatusPayload — результат отправки формы.
type StatusPayload struct {
	OK      bool
	Code    int
	Message string
}

// Modal — размеченное объединение: открыта ровно одна модалка или ни одной.
// Поля Product/Status осмысленны только для соответствующего Kind.
type Modal struct {
	kind    ModalKind
	product ProductRef
	status  StatusPayload
}

func Closed() Modal { return Modal{} }

func Enquiry(p ProductRef) Modal { return Modal{kind: ModalEnquiry, product: p} }

func QuickView(p ProductRef) Modal { return Modal{kind: ModalQuickView, product: p} }

func Status(s StatusPayload) Modal { return Modal{kind: ModalStatus, status: s} }

func (m Modal) Kind() ModalKind { return m.kind }

func (m Modal) IsOpen() bool { return m.kind != ModalClosed }

// Product — (ref, true) для Enquiry/QuickView.
func (m Modal) Product() (ProductRef, bool) {
	if m.kind == ModalEnquiry || m.kind == ModalQuickView {
		return m.product, true
	}
	return ProductRef{}, false
}

func (m Modal) Status() (StatusPayload, bool) {
	if m.kind == ModalStatus {
		return m.status, true
	}
	return StatusPayload{}, false
}

// Open — открытие любой модалки заменяет текущую.
func (m Modal) Open(next Modal) Modal { return next }

func (m Modal) Close() Modal { return Closed() }

// ModalFromQuery — ?enquire=slug / ?quickview=slug; при обоих побеждает enquire.
// resolve по слагу достаёт карточку товара (false — товара нет, модалка закрыта).
func ModalFromQuery(q url.Values, resolve func(slug string) (ProductRef, bool)) Modal {
	if slug := q.Get("enquire"); slug != "" {
		if ref, ok := lookup(slug, resolve); ok {
			return Enquiry(ref)
		}
	}
	if slug := q.Get("quickview"); slug != "" {
		if ref, ok := lookup(slug, resolve); ok {
			return QuickView(ref)
		}
	}
	return Closed()
}

func lookup(slug string, resolve func(string) (ProductRef, bool)) (ProductRef, bool) {
	if resolve == nil {
		return ProductRef{Slug: slug}, true
	}
	return resolve(slug)
}
