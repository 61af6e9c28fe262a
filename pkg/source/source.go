// Package source opens the contact repository selected by configuration.
package source

import (
	"context"
	"fmt"
	"strconv"

	"addressbook/bolt"
	"addressbook/contact"
	"addressbook/dynamodb"
	"addressbook/memory"
	"addressbook/pkg/config"
	"addressbook/postgres"
)

// Source is an opened contact repository and the function releasing it.
type Source struct {
	Name       string
	Repository contact.Repository
	close      func() error
}

func (s *Source) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects to the repository named by cfg.ContactsSource. The memory
// source starts with the default contacts.
func Open(ctx context.Context, cfg *config.Config) (*Source, error) {
	name, err := cfg.Source()
	if err != nil {
		return nil, err
	}

	switch name {
	case config.SourcePostgres:
		db, err := postgres.NewConnection(postgres.Options{
			DBName:   cfg.DB.Name,
			DBUser:   cfg.DB.User,
			Password: cfg.DB.Pass,
			Host:     cfg.DB.Host,
			Port:     strconv.Itoa(cfg.DB.Port),
			SSLMode:  cfg.DB.EnableSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("open postgres connection: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get postgres instance: %w", err)
		}
		return &Source{Name: name, Repository: postgres.NewContactRepository(db), close: sqlDB.Close}, nil

	case config.SourceDynamoDB:
		client, err := dynamodb.NewClient(ctx, dynamodb.Options{
			Region:       cfg.DynamoDB.Region,
			Endpoint:     cfg.DynamoDB.Endpoint,
			AccessKey:    cfg.DynamoDB.AccessKey,
			SecretKey:    cfg.DynamoDB.SecretKey,
			SessionToken: cfg.DynamoDB.SessionToken,
		})
		if err != nil {
			return nil, fmt.Errorf("open dynamodb client: %w", err)
		}
		return &Source{Name: name, Repository: dynamodb.NewContactRepository(client, cfg.DynamoDB.ContactsTable)}, nil

	case config.SourceBolt:
		repo, err := bolt.Open(cfg.Bolt.Path)
		if err != nil {
			return nil, err
		}
		return &Source{Name: name, Repository: repo, close: repo.Close}, nil

	default:
		return &Source{Name: name, Repository: memory.NewContactRepository(memory.DefaultContacts()...)}, nil
	}
}
