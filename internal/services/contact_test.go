package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fairwaydreams/fairway-backend/internal/logger"
	"github.com/fairwaydreams/fairway-backend/internal/numerology"
	"github.com/fairwaydreams/fairway-backend/internal/types"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

type stubContactRepo struct {
	contacts map[uuid.UUID]*types.Contact
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{contacts: map[uuid.UUID]*types.Contact{}}
}

func (s *stubContactRepo) Create(ctx context.Context, tx *gorm.DB, contacts []*types.Contact) ([]*types.Contact, error) {
	for _, c := range contacts {
		s.contacts[c.ID] = c
	}
	return contacts, nil
}

func (s *stubContactRepo) GetByID(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) (*types.Contact, error) {
	c, ok := s.contacts[contactID]
	if !ok {
		return nil, fmt.Errorf("contact %s not found", contactID)
	}
	return c, nil
}

func (s *stubContactRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Contact, error) {
	out := []*types.Contact{}
	for _, c := range s.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubContactRepo) Save(ctx context.Context, tx *gorm.DB, contact *types.Contact) (*types.Contact, error) {
	s.contacts[contact.ID] = contact
	return contact, nil
}

func (s *stubContactRepo) UpdateAIContent(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, fields map[string]interface{}) error {
	c, ok := s.contacts[contactID]
	if !ok {
		return fmt.Errorf("contact %s not found", contactID)
	}
	if v, ok := fields["ai_summary"]; ok {
		c.AISummary = v.(string)
	}
	if v, ok := fields["ai_bios"]; ok {
		c.AIBios = v.(string)
	}
	return nil
}

func (s *stubContactRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) error {
	if _, ok := s.contacts[contactID]; !ok {
		return fmt.Errorf("contact %s not found", contactID)
	}
	delete(s.contacts, contactID)
	return nil
}

func newTestContactService(t *testing.T, repo *stubContactRepo, now time.Time) *contactService {
	t.Helper()
	return &contactService{
		db:          nil,
		log:         newTestLogger(t),
		contactRepo: repo,
		validate:    validator.New(),
		now:         func() time.Time { return now },
	}
}

func TestCreateComputesFullProfile(t *testing.T) {
	repo := newStubContactRepo()
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	cs := newTestContactService(t, repo, now)

	contact, err := cs.Create(context.Background(), ContactInput{
		FullName:  "John Smith",
		Birthdate: "1990-05-15",
		BirthTime: "09:30",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if contact.LifePath != 3 {
		t.Fatalf("life path = %d, want 3", contact.LifePath)
	}
	if contact.Expression != 8 {
		t.Fatalf("expression = %d, want 8", contact.Expression)
	}
	if contact.Score != 50 {
		t.Fatalf("score = %d, want 50", contact.Score)
	}

	var readings numerology.CoreReadings
	if err := json.Unmarshal(contact.Readings, &readings); err != nil {
		t.Fatalf("decode readings: %v", err)
	}
	if readings.SoulUrge != 6 {
		t.Fatalf("soul urge = %d, want 6", readings.SoulUrge)
	}
	if readings.Personality != 11 {
		t.Fatalf("personality = %d, want 11", readings.Personality)
	}
	if readings.PersonalYear != 1 || readings.PersonalMonth != 7 || readings.PersonalDay != 22 {
		t.Fatalf("personal cycles = %d/%d/%d, want 1/7/22",
			readings.PersonalYear, readings.PersonalMonth, readings.PersonalDay)
	}
	if len(contact.AdvancedReadings) == 0 {
		t.Fatalf("expected advanced readings when birth time present")
	}
	if contact.BirthTime == nil || *contact.BirthTime != "09:30" {
		t.Fatalf("birth time not preserved: %v", contact.BirthTime)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	cs := newTestContactService(t, newStubContactRepo(), time.Now())

	cases := []ContactInput{
		{FullName: "", Birthdate: "1990-05-15"},
		{FullName: "John Smith", Birthdate: "15/05/1990"},
		{FullName: "John Smith", Birthdate: "1990-05-15", Email: "not-an-email"},
	}
	for i, in := range cases {
		if _, err := cs.Create(context.Background(), in); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, in)
		}
	}
}

func TestCreateWithoutBirthTimeHasNoAdvancedReadings(t *testing.T) {
	cs := newTestContactService(t, newStubContactRepo(), time.Now())

	contact, err := cs.Create(context.Background(), ContactInput{
		FullName:  "John Smith",
		Birthdate: "1990-05-15",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(contact.AdvancedReadings) != 0 {
		t.Fatalf("expected no advanced readings, got %s", contact.AdvancedReadings)
	}
	if contact.BirthTime != nil {
		t.Fatalf("expected nil birth time, got %q", *contact.BirthTime)
	}
}

func TestUpdatePreservesAnnotations(t *testing.T) {
	repo := newStubContactRepo()
	cs := newTestContactService(t, repo, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))

	created, err := cs.Create(context.Background(), ContactInput{
		FullName:  "John Smith",
		Birthdate: "1990-05-15",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	created.AISummary = "keep me"
	created.AIBios = "and me"

	updated, err := cs.Update(context.Background(), created.ID, ContactInput{
		FullName:  "Al",
		Birthdate: "1985-03-19",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update changed contact id")
	}
	if updated.AISummary != "keep me" || updated.AIBios != "and me" {
		t.Fatalf("update dropped annotations: %q / %q", updated.AISummary, updated.AIBios)
	}
	if updated.LifePath != 9 || updated.Expression != 4 {
		t.Fatalf("derived fields not recomputed: lifePath=%d expression=%d", updated.LifePath, updated.Expression)
	}
}

func TestImportCSVFiltersRows(t *testing.T) {
	repo := newStubContactRepo()
	cs := newTestContactService(t, repo, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))

	csvBody := strings.Join([]string{
		"fullName,birthdate,birthTime,email",
		"John Smith,1990-05-15,09:30,john@example.com",
		"Al,1985-03-19,,",
		",1990-05-15,,",
		"No Date,,,",
		"Bad Date,15/05/1990,,",
	}, "\n")

	result, err := cs.ImportCSV(context.Background(), strings.NewReader(csvBody))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if result.Imported != 2 {
		t.Fatalf("imported = %d, want 2", result.Imported)
	}
	// Header plus the three malformed rows.
	if result.Skipped != 4 {
		t.Fatalf("skipped = %d, want 4", result.Skipped)
	}
	if len(repo.contacts) != 2 {
		t.Fatalf("stored = %d, want 2", len(repo.contacts))
	}
	for _, c := range repo.contacts {
		if c.LifePath == 0 || c.Expression == 0 {
			t.Fatalf("imported contact missing derived fields: %+v", c)
		}
	}
}

func TestSaveAIContentMergesFields(t *testing.T) {
	repo := newStubContactRepo()
	cs := newTestContactService(t, repo, time.Now())

	created, err := cs.Create(context.Background(), ContactInput{
		FullName:  "John Smith",
		Birthdate: "1990-05-15",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	summary := "short summary"
	got, err := cs.SaveAIContent(context.Background(), created.ID, AIContentInput{Summary: &summary})
	if err != nil {
		t.Fatalf("SaveAIContent: %v", err)
	}
	if got.AISummary != "short summary" {
		t.Fatalf("summary = %q, want %q", got.AISummary, "short summary")
	}
	if got.AIBios != "" {
		t.Fatalf("bios should be untouched, got %q", got.AIBios)
	}

	bios := "two bios"
	got, err = cs.SaveAIContent(context.Background(), created.ID, AIContentInput{Bios: &bios})
	if err != nil {
		t.Fatalf("SaveAIContent: %v", err)
	}
	if got.AISummary != "short summary" || got.AIBios != "two bios" {
		t.Fatalf("merge lost fields: %q / %q", got.AISummary, got.AIBios)
	}
}
