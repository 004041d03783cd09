package models

import "encoding/json"

// NewsletterSignup is one row of the newsletter_signups table
type NewsletterSignup struct {
	ID        RowID  `json:"id,omitempty"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`

	raw json.RawMessage
}

// NewsletterSignupInput is the body of a newsletter signup request
type NewsletterSignupInput struct {
	Email string `json:"email" binding:"required,email"`
}

func (n *NewsletterSignup) UnmarshalJSON(data []byte) error {
	type row NewsletterSignup
	var decoded row
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*n = NewsletterSignup(decoded)
	n.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (n NewsletterSignup) MarshalJSON() ([]byte, error) {
	if len(n.raw) > 0 {
		return n.raw, nil
	}
	type row NewsletterSignup
	return json.Marshal(row(n))
}

// Raw returns the row as the store reported it, nil for rows built locally
func (n *NewsletterSignup) Raw() json.RawMessage {
	return n.raw
}
