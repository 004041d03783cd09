package models

import "encoding/json"

// ContactSubmission is one row of the contact_submissions table.
// ID and CreatedAt are assigned by the store. A row decoded from the store
// marshals back to the exact JSON it was decoded from, columns this struct
// does not declare included.
type ContactSubmission struct {
	ID        RowID  `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at,omitempty"`

	raw json.RawMessage
}

// ContactSubmissionInput is what the contact form sends
type ContactSubmissionInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message" binding:"required"`
}

func (c *ContactSubmission) UnmarshalJSON(data []byte) error {
	type row ContactSubmission
	var decoded row
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*c = ContactSubmission(decoded)
	c.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (c ContactSubmission) MarshalJSON() ([]byte, error) {
	if len(c.raw) > 0 {
		return c.raw, nil
	}
	type row ContactSubmission
	return json.Marshal(row(c))
}

// Raw returns the row as the store reported it, nil for rows built locally
func (c *ContactSubmission) Raw() json.RawMessage {
	return c.raw
}
