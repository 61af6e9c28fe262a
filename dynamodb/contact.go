package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"addressbook/contact"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

// ContactClient is the subset of *dynamodb.Client used by ContactRepository.
type ContactClient interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type ContactRepository struct {
	client ContactClient
	table  string
	now    func() time.Time

	mu   sync.Mutex
	last int64
}

type contactItem struct {
	ID        string  `dynamodbav:"id"`
	Street    string  `dynamodbav:"street"`
	City      string  `dynamodbav:"city"`
	State     string  `dynamodbav:"state"`
	Country   *string `dynamodbav:"country,omitempty"`
	CreatedAt int64   `dynamodbav:"created_at"`
}

func NewContactRepository(client ContactClient, table string) *ContactRepository {
	return &ContactRepository{
		client: client,
		table:  table,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (r *ContactRepository) CreateContact(ctx context.Context, c contact.Contact) error {
	if err := validateTable(r.table); err != nil {
		return err
	}

	item := contactItem{
		ID:        uuid.NewString(),
		Street:    c.Street,
		City:      c.City,
		State:     c.State,
		Country:   c.Country,
		CreatedAt: r.nextTimestamp(),
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("dynamodb: marshal contact: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &r.table,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("dynamodb: put contact: %w", classify(err))
	}

	return nil
}

// nextTimestamp is strictly increasing within this repository so contacts
// created in a burst keep their order.
func (r *ContactRepository) nextTimestamp() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := r.now().UnixNano()
	if ts <= r.last {
		ts = r.last + 1
	}
	r.last = ts
	return ts
}

// AllContacts scans the whole table. Items come back in creation order.
func (r *ContactRepository) AllContacts(ctx context.Context) ([]contact.Contact, error) {
	if err := validateTable(r.table); err != nil {
		return nil, err
	}

	var items []contactItem
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: &r.table,
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: scan contacts: %w", classify(err))
		}

		var page []contactItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("dynamodb: unmarshal contacts: %w", err)
		}
		items = append(items, page...)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt < items[j].CreatedAt
		}
		return items[i].ID < items[j].ID
	})

	contacts := make([]contact.Contact, len(items))
	for i, item := range items {
		contacts[i] = contact.Contact{
			Street:  item.Street,
			City:    item.City,
			State:   item.State,
			Country: item.Country,
		}
	}
	return contacts, nil
}
