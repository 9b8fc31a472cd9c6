package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"outreach_web/server/web/domain"
)

// maxItemizedImportErrors bounds the per-row error list shown to the user;
// failures beyond the cap are only counted.
const maxItemizedImportErrors = 20

type contactCreator interface {
	Create(ctx context.Context, token, accountID string, contact domain.Contact) (domain.Contact, error)
}

// ImportService runs bulk contact imports: the whole file is parsed into
// memory, arbitrary column headers are mapped onto the contact schema, and
// one create call is issued per row, strictly in order, so the tally and
// error list stay consistent. No batching, no rollback.
type ImportService struct {
	contacts contactCreator
}

func NewImportService(contacts contactCreator) *ImportService {
	return &ImportService{contacts: contacts}
}

// columnAliases maps normalized header names onto contact fields.
var columnAliases = map[string]string{
	"name":          "name",
	"full name":     "name",
	"contact name":  "name",
	"first name":    "name",
	"email":         "email",
	"e-mail":        "email",
	"email address": "email",
	"mail":          "email",
	"company":       "company",
	"organization":  "company",
	"organisation":  "company",
	"account":       "company",
	"title":         "title",
	"job title":     "title",
	"position":      "title",
	"role":          "title",
	"phone":         "phone",
	"phone number":  "phone",
	"telephone":     "phone",
	"mobile":        "phone",
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "_", " ")
	return strings.Join(strings.Fields(h), " ")
}

// Import parses CSV data from r and creates one contact per data row.
// Rows missing a name or email fail validation locally; rows the backend
// rejects fail with the normalized backend message. The summary always
// satisfies Succeeded+Failed == Total.
func (s *ImportService) Import(ctx context.Context, token, accountID string, r io.Reader) (domain.ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return domain.ImportSummary{}, fmt.Errorf("parsing spreadsheet: %w", err)
	}
	if len(records) < 2 {
		return domain.ImportSummary{}, fmt.Errorf("the file has no data rows")
	}

	fieldFor := make(map[int]string, len(records[0]))
	for i, header := range records[0] {
		if field, ok := columnAliases[normalizeHeader(header)]; ok {
			fieldFor[i] = field
		}
	}

	summary := domain.ImportSummary{Errors: []string{}}
	for rowNum, record := range records[1:] {
		summary.Total++

		contact := domain.Contact{}
		for i, cell := range record {
			switch fieldFor[i] {
			case "name":
				contact.Name = strings.TrimSpace(cell)
			case "email":
				contact.Email = strings.TrimSpace(cell)
			case "company":
				contact.Company = strings.TrimSpace(cell)
			case "title":
				contact.Title = strings.TrimSpace(cell)
			case "phone":
				contact.Phone = strings.TrimSpace(cell)
			}
		}

		if contact.Name == "" || contact.Email == "" {
			s.recordFailure(&summary, rowNum+2, "name and email are required")
			continue
		}

		if _, err := s.contacts.Create(ctx, token, accountID, contact); err != nil {
			s.recordFailure(&summary, rowNum+2, err.Error())
			continue
		}
		summary.Succeeded++
	}
	return summary, nil
}

// recordFailure counts the failure and itemizes it while under the cap.
// rowNum is 1-based and includes the header row, matching what the user
// sees in their spreadsheet.
func (s *ImportService) recordFailure(summary *domain.ImportSummary, rowNum int, reason string) {
	summary.Failed++
	if len(summary.Errors) < maxItemizedImportErrors {
		summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: %s", rowNum, reason))
	} else {
		summary.Truncated++
	}
}
