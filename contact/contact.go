package contact

import (
	"strings"

	"addressbook/errs"
)

var (
	ErrInvalidStreet = errs.Errorf(errs.EINVALID, "contact: invalid street")
	ErrInvalidCity   = errs.Errorf(errs.EINVALID, "contact: invalid city")
	ErrInvalidState  = errs.Errorf(errs.EINVALID, "contact: invalid state")
	ErrEmptyCountry  = errs.Errorf(errs.EINVALID, "contact: country must be absent or non-empty")
)

// Fetch errors. A contact source reports exactly one of these.
var (
	ErrNotAccessible = errs.Errorf(errs.ENOTACCESSIBLE, "contact: source not accessible")
	// ErrUnknown covers every failure the source does not classify further.
	ErrUnknown = errs.Errorf(errs.EUNKNOWN, "contact: unexpected source failure")
)

// Contact is a raw postal address as received from a source. A nil Country
// marks the record as not displayable.
type Contact struct {
	Street  string
	City    string
	State   string
	Country *string
}

// ViewModel is the display-ready projection of a Contact.
type ViewModel struct {
	FullAddress string `json:"fullAddress"`
}

// Country returns a pointer suitable for Contact.Country.
func Country(code string) *string {
	return &code
}

func (c Contact) HasCountry() bool {
	return c.Country != nil
}

// Validate is applied before a contact is written to a source. Reads never
// validate: invalid records are filtered, not rejected.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Street) == "" {
		return ErrInvalidStreet
	}

	if strings.TrimSpace(c.City) == "" {
		return ErrInvalidCity
	}

	if strings.TrimSpace(c.State) == "" {
		return ErrInvalidState
	}

	if c.Country != nil && strings.TrimSpace(*c.Country) == "" {
		return ErrEmptyCountry
	}

	return nil
}

// FormatAddress renders "{street} - {city}, {state}". Country is never part
// of the line.
func FormatAddress(c Contact) string {
	return c.Street + " - " + c.City + ", " + c.State
}

// AsFetchError folds err into the closed set of fetch errors.
func AsFetchError(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.ErrorCode(err) == errs.ENOTACCESSIBLE:
		return ErrNotAccessible
	default:
		return ErrUnknown
	}
}
