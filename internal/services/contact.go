package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fairwaydreams/fairway-backend/internal/logger"
	"github.com/fairwaydreams/fairway-backend/internal/numerology"
	"github.com/fairwaydreams/fairway-backend/internal/repos"
	"github.com/fairwaydreams/fairway-backend/internal/types"
)

type ContactInput struct {
	FullName  string `json:"full_name" validate:"required"`
	Birthdate string `json:"birthdate" validate:"required,datetime=2006-01-02"`
	BirthTime string `json:"birth_time" validate:"omitempty"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type AIContentInput struct {
	Summary *string `json:"ai_summary,omitempty"`
	Bios    *string `json:"ai_bios,omitempty"`
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type ContactService interface {
	Create(ctx context.Context, in ContactInput) (*types.Contact, error)
	Update(ctx context.Context, contactID uuid.UUID, in ContactInput) (*types.Contact, error)
	Delete(ctx context.Context, contactID uuid.UUID) error
	GetByID(ctx context.Context, contactID uuid.UUID) (*types.Contact, error)
	List(ctx context.Context) ([]*types.Contact, error)
	ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error)
	SaveAIContent(ctx context.Context, contactID uuid.UUID, in AIContentInput) (*types.Contact, error)
}

type contactService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.ContactRepo
	validate    *validator.Validate
	now         func() time.Time
}

// Import rows must carry a well-formed date before a profile is computed.
var birthdatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const importConcurrency = 4

func NewContactService(db *gorm.DB, log *logger.Logger, contactRepo repos.ContactRepo) ContactService {
	serviceLog := log.With("service", "ContactService")
	return &contactService{
		db:          db,
		log:         serviceLog,
		contactRepo: contactRepo,
		validate:    validator.New(),
		now:         time.Now,
	}
}

func (cs *contactService) Create(ctx context.Context, in ContactInput) (*types.Contact, error) {
	if err := cs.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid contact input: %w", err)
	}

	contact, err := cs.buildContact(in)
	if err != nil {
		return nil, err
	}
	contact.ID = uuid.New()

	created, err := cs.contactRepo.Create(ctx, nil, []*types.Contact{contact})
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	cs.log.Info("Contact created", "contact_id", created[0].ID, "score", created[0].Score)
	return created[0], nil
}

// Update recomputes every derived field from scratch; there is no partial
// patch path for derived data.
func (cs *contactService) Update(ctx context.Context, contactID uuid.UUID, in ContactInput) (*types.Contact, error) {
	if err := cs.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid contact input: %w", err)
	}

	existing, err := cs.contactRepo.GetByID(ctx, nil, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}

	rebuilt, err := cs.buildContact(in)
	if err != nil {
		return nil, err
	}
	rebuilt.ID = existing.ID
	rebuilt.AISummary = existing.AISummary
	rebuilt.AIBios = existing.AIBios
	rebuilt.CreatedAt = existing.CreatedAt

	saved, err := cs.contactRepo.Save(ctx, nil, rebuilt)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	cs.log.Info("Contact recomputed", "contact_id", saved.ID, "score", saved.Score)
	return saved, nil
}

func (cs *contactService) Delete(ctx context.Context, contactID uuid.UUID) error {
	if err := cs.contactRepo.SoftDeleteByID(ctx, nil, contactID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

func (cs *contactService) GetByID(ctx context.Context, contactID uuid.UUID) (*types.Contact, error) {
	return cs.contactRepo.GetByID(ctx, nil, contactID)
}

func (cs *contactService) List(ctx context.Context) ([]*types.Contact, error) {
	return cs.contactRepo.List(ctx, nil)
}

// ImportCSV accepts rows of fullName,birthdate,birthTime,email. A row is
// accepted only when fullName is non-empty and birthdate is well-formed;
// everything else (header rows included) is counted as skipped, never
// fatal. Profile computation fans out across a bounded worker group.
func (cs *contactService) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	type row struct {
		in    ContactInput
		index int
	}
	var rows []row
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		in := contactInputFromRecord(record)
		if in.FullName == "" || !birthdatePattern.MatchString(in.Birthdate) {
			skipped++
			continue
		}
		rows = append(rows, row{in: in, index: len(rows)})
	}

	contacts := make([]*types.Contact, len(rows))
	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(importConcurrency)
	for _, item := range rows {
		item := item
		group.Go(func() error {
			if groupCtx.Err() != nil {
				return groupCtx.Err()
			}
			contact, err := cs.buildContact(item.in)
			if err != nil {
				return err
			}
			contact.ID = uuid.New()
			mu.Lock()
			contacts[item.index] = contact
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute imported profiles: %w", err)
	}

	if _, err := cs.contactRepo.Create(ctx, nil, contacts); err != nil {
		return nil, fmt.Errorf("failed to store imported contacts: %w", err)
	}

	cs.log.Info("CSV import finished", "imported", len(contacts), "skipped", skipped)
	return &ImportResult{Imported: len(contacts), Skipped: skipped}, nil
}

// SaveAIContent merges the annotation fields without touching any derived
// field.
func (cs *contactService) SaveAIContent(ctx context.Context, contactID uuid.UUID, in AIContentInput) (*types.Contact, error) {
	fields := map[string]interface{}{}
	if in.Summary != nil {
		fields["ai_summary"] = *in.Summary
	}
	if in.Bios != nil {
		fields["ai_bios"] = *in.Bios
	}
	if len(fields) > 0 {
		if err := cs.contactRepo.UpdateAIContent(ctx, nil, contactID, fields); err != nil {
			return nil, fmt.Errorf("failed to save ai content: %w", err)
		}
	}
	return cs.contactRepo.GetByID(ctx, nil, contactID)
}

// buildContact runs the full engine pipeline for one input tuple.
func (cs *contactService) buildContact(in ContactInput) (*types.Contact, error) {
	lifePath := numerology.CalcLifePath(in.Birthdate)
	expression := numerology.CalcExpression(in.FullName)

	readings := numerology.CalcCoreReadings(numerology.ReadingInput{
		FullName:   in.FullName,
		Birthdate:  in.Birthdate,
		LifePath:   lifePath,
		Expression: expression,
	}, cs.now().UTC())
	readingsJSON, err := json.Marshal(readings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode readings: %w", err)
	}

	var advancedJSON datatypes.JSON
	if advanced := numerology.CalcAdvancedReadings(in.Birthdate, in.BirthTime, lifePath); advanced != nil {
		raw, err := json.Marshal(advanced)
		if err != nil {
			return nil, fmt.Errorf("failed to encode advanced readings: %w", err)
		}
		advancedJSON = raw
	}

	score := numerology.CalcScore(lifePath, expression, in.BirthTime)

	var birthTime *string
	if trimmed := strings.TrimSpace(in.BirthTime); trimmed != "" {
		birthTime = &trimmed
	}

	return &types.Contact{
		FullName:         in.FullName,
		Birthdate:        in.Birthdate,
		BirthTime:        birthTime,
		Email:            in.Email,
		LifePath:         lifePath,
		Expression:       expression,
		Score:            score,
		Readings:         readingsJSON,
		AdvancedReadings: advancedJSON,
	}, nil
}

func contactInputFromRecord(record []string) ContactInput {
	get := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}
	return ContactInput{
		FullName:  get(0),
		Birthdate: get(1),
		BirthTime: get(2),
		Email:     get(3),
	}
}
