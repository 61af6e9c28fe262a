// Package bolt stores contacts in an embedded bbolt file.
package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"addressbook/contact"
	"addressbook/errs"

	bbolt "go.etcd.io/bbolt"
)

var bucketContacts = []byte("contacts")

type contactRecord struct {
	Street  string  `json:"street"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Country *string `json:"country,omitempty"`
}

// ContactRepository implements contact.Repository on a bbolt database. Keys
// are bucket sequence numbers, so iteration follows insertion order.
type ContactRepository struct {
	db *bbolt.DB
}

func Open(path string) (*ContactRepository, error) {
	if path == "" {
		return nil, errs.Errorf(errs.ENOTACCESSIBLE, "bolt: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("bolt: %w", classify(err))
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: open %s: %w", path, classify(err))
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketContacts)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bolt: create bucket: %w", err)
	}

	return &ContactRepository{db: db}, nil
}

func (r *ContactRepository) Close() error {
	return r.db.Close()
}

func (r *ContactRepository) CreateContact(ctx context.Context, c contact.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(contactRecord{
		Street:  c.Street,
		City:    c.City,
		State:   c.State,
		Country: c.Country,
	})
	if err != nil {
		return fmt.Errorf("bolt: marshal contact: %w", err)
	}

	err = r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketContacts)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(key(seq), data)
	})
	if err != nil {
		return fmt.Errorf("bolt: put contact: %w", classify(err))
	}
	return nil
}

func (r *ContactRepository) AllContacts(ctx context.Context) ([]contact.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contacts := []contact.Contact{}
	err := r.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketContacts)
		if b == nil {
			return errs.Errorf(errs.ENOTACCESSIBLE, "bolt: contacts bucket missing")
		}
		return b.ForEach(func(k, v []byte) error {
			var rec contactRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decode contact %d: %w", binary.BigEndian.Uint64(k), err)
			}
			contacts = append(contacts, contact.Contact{
				Street:  rec.Street,
				City:    rec.City,
				State:   rec.State,
				Country: rec.Country,
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("bolt: list contacts: %w", classify(err))
	}
	return contacts, nil
}

func key(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

func classify(err error) error {
	switch {
	case errors.Is(err, bbolt.ErrDatabaseNotOpen),
		errors.Is(err, bbolt.ErrTimeout),
		errors.Is(err, bbolt.ErrDatabaseReadOnly),
		errors.Is(err, fs.ErrPermission):
		return errs.Errorf(errs.ENOTACCESSIBLE, "bolt: %v", err)
	}
	return err
}
