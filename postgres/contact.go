package postgres

import (
	"context"
	"fmt"

	"addressbook/contact"

	"gorm.io/gorm"
)

// ContactModel represents the database model for contacts
type ContactModel struct {
	ID      uint   `gorm:"primaryKey"`
	Street  string `gorm:"not null"`
	City    string `gorm:"not null"`
	State   string `gorm:"not null"`
	Country *string
}

// TableName specifies the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ContactRepository implements contact.Repository interface
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// CreateContact creates a new contact in the database
func (r *ContactRepository) CreateContact(ctx context.Context, c contact.Contact) error {
	model := ContactModel{
		Street:  c.Street,
		City:    c.City,
		State:   c.State,
		Country: c.Country,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("postgres: create contact: %w", classify(err))
	}
	return nil
}

// AllContacts returns every contact in insertion order, including the ones
// without a country.
func (r *ContactRepository) AllContacts(ctx context.Context) ([]contact.Contact, error) {
	if err := ping(ctx, r.db); err != nil {
		return nil, fmt.Errorf("postgres: list contacts: %w", err)
	}

	var models []ContactModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("postgres: list contacts: %w", classify(err))
	}

	contacts := make([]contact.Contact, len(models))
	for i, model := range models {
		contacts[i] = contact.Contact{
			Street:  model.Street,
			City:    model.City,
			State:   model.State,
			Country: model.Country,
		}
	}
	return contacts, nil
}
