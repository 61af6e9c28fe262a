package source_test

import (
	"context"
	"path/filepath"
	"testing"

	"addressbook/bolt"
	"addressbook/contact"
	"addressbook/errs"
	"addressbook/memory"
	"addressbook/pkg/config"
	"addressbook/pkg/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("defaults to the memory source", func(t *testing.T) {
		src, err := source.Open(context.Background(), &config.Config{})
		require.NoError(t, err)
		defer src.Close()

		assert.Equal(t, config.SourceMemory, src.Name)
		assert.IsType(t, &memory.ContactRepository{}, src.Repository)

		all, err := src.Repository.AllContacts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, memory.DefaultContacts(), all)
	})

	t.Run("opens a bolt file", func(t *testing.T) {
		cfg := &config.Config{ContactsSource: "BOLT"}
		cfg.Bolt.Path = filepath.Join(t.TempDir(), "data", "contacts.db")

		src, err := source.Open(context.Background(), cfg)
		require.NoError(t, err)

		assert.Equal(t, config.SourceBolt, src.Name)
		assert.IsType(t, &bolt.ContactRepository{}, src.Repository)
		assert.NoError(t, src.Repository.CreateContact(context.Background(), contact.Contact{Street: "s", City: "c", State: "st"}))
		assert.NoError(t, src.Close())
	})

	t.Run("rejects an unknown source", func(t *testing.T) {
		_, err := source.Open(context.Background(), &config.Config{ContactsSource: "redis"})

		assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
	})

	t.Run("requires a dynamodb region", func(t *testing.T) {
		_, err := source.Open(context.Background(), &config.Config{ContactsSource: config.SourceDynamoDB})

		assert.Error(t, err)
	})
}
