package contact_test

import (
	"errors"
	"fmt"
	"testing"

	"addressbook/contact"
	"addressbook/errs"

	"github.com/stretchr/testify/assert"
)

func TestContact_Validate(t *testing.T) {
	tests := []struct {
		name     string
		contact  contact.Contact
		expected error
	}{
		{
			name:     "valid contact with country",
			contact:  saoPaulo(),
			expected: nil,
		},
		{
			name:     "valid contact without country",
			contact:  withoutCountry(),
			expected: nil,
		},
		{
			name:     "empty street",
			contact:  contact.Contact{City: "Recife", State: "PE"},
			expected: contact.ErrInvalidStreet,
		},
		{
			name:     "blank city",
			contact:  contact.Contact{Street: "Rua Aurora, 1", City: "  ", State: "PE"},
			expected: contact.ErrInvalidCity,
		},
		{
			name:     "empty state",
			contact:  contact.Contact{Street: "Rua Aurora, 1", City: "Recife"},
			expected: contact.ErrInvalidState,
		},
		{
			name:     "present but empty country",
			contact:  contact.Contact{Street: "Rua Aurora, 1", City: "Recife", State: "PE", Country: contact.Country("")},
			expected: contact.ErrEmptyCountry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.contact.Validate())
		})
	}
}

func TestFormatAddress(t *testing.T) {
	t.Run("formats street, city and state", func(t *testing.T) {
		assert.Equal(t, "Rua da Vala, 666 - São Paulo, SP", contact.FormatAddress(saoPaulo()))
	})

	t.Run("never includes the country", func(t *testing.T) {
		c := contact.Contact{Street: "1 Infinite Loop", City: "Cupertino", State: "CA", Country: contact.Country("US")}

		assert.Equal(t, "1 Infinite Loop - Cupertino, CA", contact.FormatAddress(c))
		assert.NotContains(t, contact.FormatAddress(c), "US")
	})

	t.Run("keeps separators for empty fields", func(t *testing.T) {
		assert.Equal(t, " - , ", contact.FormatAddress(contact.Contact{}))
	})
}

func TestAsFetchError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil stays nil",
			err:      nil,
			expected: nil,
		},
		{
			name:     "not accessible sentinel",
			err:      contact.ErrNotAccessible,
			expected: contact.ErrNotAccessible,
		},
		{
			name:     "wrapped not accessible code",
			err:      fmt.Errorf("postgres: list contacts: %w", errs.Errorf(errs.ENOTACCESSIBLE, "connection refused")),
			expected: contact.ErrNotAccessible,
		},
		{
			name:     "unknown sentinel",
			err:      contact.ErrUnknown,
			expected: contact.ErrUnknown,
		},
		{
			name:     "other application error",
			err:      errs.Errorf(errs.ENOTFOUND, "table missing"),
			expected: contact.ErrUnknown,
		},
		{
			name:     "standard error",
			err:      errors.New("boom"),
			expected: contact.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, contact.AsFetchError(tt.err))
		})
	}
}

func TestContact_HasCountry(t *testing.T) {
	assert.True(t, saoPaulo().HasCountry())
	assert.False(t, withoutCountry().HasCountry())
}
