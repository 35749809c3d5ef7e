package dto

// SendMailPayload carries the content and metadata of one outbound mail.
type SendMailPayload struct {
	From     string   `json:"from"`
	To       []string `json:"to"`
	Subject  string   `json:"subject"`
	Text     string   `json:"text"`
	Encoding string   `json:"encoding"` // "plain" or "base64"
}

// SendMailRequest is the top-level body of POST /send.
type SendMailRequest struct {
	Mail *SendMailPayload `json:"mail" validate:"required"`
}
