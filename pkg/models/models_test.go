package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowIDDecoding(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    RowID
		wantErr bool
	}{
		{"uuid string", `{"id":"7f0c2a1e-9a51-4c1b-8d3e-2f1a6b7c8d9e","email":"a@example.com"}`, "7f0c2a1e-9a51-4c1b-8d3e-2f1a6b7c8d9e", false},
		{"bigserial number", `{"id":42,"email":"a@example.com"}`, "42", false},
		{"null", `{"id":null,"email":"a@example.com"}`, "", false},
		{"missing", `{"email":"a@example.com"}`, "", false},
		{"boolean", `{"id":true,"email":"a@example.com"}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var signup NewsletterSignup
			err := json.Unmarshal([]byte(tt.body), &signup)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, signup.ID)
			assert.Equal(t, "a@example.com", signup.Email)
		})
	}
}

func TestStoredRowMarshalsUnmodified(t *testing.T) {
	body := `{"id":42,"email":"a@example.com","created_at":"2026-10-18T09:00:00+00:00","source":"landing"}`

	var signup NewsletterSignup
	require.NoError(t, json.Unmarshal([]byte(body), &signup))

	encoded, err := json.Marshal(&signup)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(encoded))
	assert.JSONEq(t, body, string(signup.Raw()))
}

func TestContactSubmissionKeepsExtraColumns(t *testing.T) {
	body := `{"id":7,"first_name":"A","last_name":"B","email":"a@b.com","phone":null,"message":"hi","status":"new","created_at":"2026-10-18T09:00:00+00:00"}`

	var contact ContactSubmission
	require.NoError(t, json.Unmarshal([]byte(body), &contact))

	assert.Equal(t, RowID("7"), contact.ID)
	assert.Equal(t, "A", contact.FirstName)
	assert.Empty(t, contact.Phone)

	encoded, err := json.Marshal(contact)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(encoded))
}

func TestLocalRowOmitsEmptyFields(t *testing.T) {
	contact := ContactSubmission{ID: "mock-id", FirstName: "A", LastName: "B", Email: "a@b.com", Message: "hi"}

	encoded, err := json.Marshal(contact)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"mock-id","first_name":"A","last_name":"B","email":"a@b.com","message":"hi"}`, string(encoded))
	assert.Nil(t, contact.Raw())
}
