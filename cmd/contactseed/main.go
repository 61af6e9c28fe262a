package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"addressbook/contact"
	"addressbook/memory"
	"addressbook/pkg/config"
	"addressbook/pkg/source"

	_ "github.com/lib/pq"
)

func main() {
	var (
		csvPath string
		limit   int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to a contacts csv with street,city,state,country columns (default contacts when empty)")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	src, err := source.Open(ctx, cfg)
	if err != nil {
		slog.Error("cannot open contacts source", "error", err)
		os.Exit(1)
	}
	defer src.Close()

	if src.Name == config.SourceMemory {
		slog.Warn("memory source does not persist, seeded contacts are dropped on exit")
	}

	contacts := memory.DefaultContacts()
	if csvPath != "" {
		contacts, err = readContacts(csvPath, limit)
		if err != nil {
			slog.Error("cannot read contacts", "error", err)
			os.Exit(1)
		}
	}

	count, err := importContacts(ctx, contact.NewUsecase(src.Repository), contacts)
	if err != nil {
		slog.Error("import failed", "error", err, "rows", count)
		os.Exit(1)
	}

	slog.Info("import completed", "rows", count, "source", src.Name)
}

func importContacts(ctx context.Context, svc contact.Service, contacts []contact.Contact) (int, error) {
	count := 0
	for _, c := range contacts {
		if err := svc.AddContact(ctx, c); err != nil {
			return count, fmt.Errorf("add contact %q: %w", c.Street, err)
		}
		count++
	}
	return count, nil
}

func readContacts(csvPath string, limit int) ([]contact.Contact, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseContacts(file, limit)
}

func parseContacts(r io.Reader, limit int) ([]contact.Contact, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	idx, err := parseContactCSVHeader(reader)
	if err != nil {
		return nil, err
	}

	var contacts []contact.Contact
	for limit <= 0 || len(contacts) < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return contacts, err
		}

		c, ok := parseContactRecord(record, idx)
		if !ok {
			continue
		}
		contacts = append(contacts, c)
	}

	return contacts, nil
}

type columns struct {
	street, city, state, country int
}

func parseContactCSVHeader(reader *csv.Reader) (columns, error) {
	header, err := reader.Read()
	if err != nil {
		return columns{}, err
	}

	idx := columns{street: -1, city: -1, state: -1, country: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "street":
			idx.street = i
		case "city":
			idx.city = i
		case "state":
			idx.state = i
		case "country":
			idx.country = i
		}
	}
	if idx.street == -1 || idx.city == -1 || idx.state == -1 {
		return columns{}, errors.New("missing required columns in csv header")
	}

	return idx, nil
}

// parseContactRecord leaves Country nil when the column is missing or blank.
func parseContactRecord(record []string, idx columns) (contact.Contact, bool) {
	if idx.street >= len(record) || idx.city >= len(record) || idx.state >= len(record) {
		return contact.Contact{}, false
	}

	c := contact.Contact{
		Street: strings.TrimSpace(record[idx.street]),
		City:   strings.TrimSpace(record[idx.city]),
		State:  strings.TrimSpace(record[idx.state]),
	}
	if idx.country >= 0 && idx.country < len(record) {
		if country := strings.TrimSpace(record[idx.country]); country != "" {
			c.Country = contact.Country(country)
		}
	}
	return c, true
}
