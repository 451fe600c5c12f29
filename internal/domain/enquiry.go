package domain

import "time"

// Enquiry — заявка с формы обратной связи / «запросить цену».
type Enquiry struct {
	Name        string `json:"name" form:"name"`
	Mobile      string `json:"mobile" form:"mobile"`
	Email       string `json:"email,omitempty" form:"email"`
	Message     string `json:"message,omitempty" form:"message"`
	Product     string `json:"product,omitempty" form:"product"`
	Subject     string `json:"subject,omitempty" form:"subject"`
	CountryCode string `json:"country_code" form:"country_code"`
	Captcha     bool   `json:"captcha" form:"captcha"`
}

// Topic — товар, если заявка по товару, иначе тема письма.
func (e *Enquiry) Topic() string {
	if e.Product != "" {
		return e.Product
	}
	return e.Subject
}

// Lead — принятая заявка, передаваемая в приёмники (почта, БД).
type Lead struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id,omitempty"`
	Enquiry    Enquiry   `json:"enquiry"`
	SourceURL  string    `json:"source_url,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// Country — элемент списка телефонных кодов.
type Country struct {
	DialCode string `json:"dial_code"`
	Name     string `json:"name"`
}
