package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/fairwaydreams/fairway-backend/internal/clients/redis"
	"github.com/fairwaydreams/fairway-backend/internal/content"
	"github.com/fairwaydreams/fairway-backend/internal/logger"
	"github.com/fairwaydreams/fairway-backend/internal/numerology"
	"github.com/fairwaydreams/fairway-backend/internal/repos"
	"github.com/fairwaydreams/fairway-backend/internal/types"
)

// Report is the full narrative rendering of one contact profile. Everything
// in it is derived from the stored identity tuple plus the engine and the
// content tables; nothing here writes back to the record.
type Report struct {
	ContactID          uuid.UUID                     `json:"contact_id"`
	FullName           string                        `json:"full_name"`
	Title              string                        `json:"title"`
	Score              int                           `json:"score"`
	LifePath           int                           `json:"life_path"`
	Expression         int                           `json:"expression"`
	Color              content.ColorInfo             `json:"color"`
	LifePathStory      string                        `json:"life_path_story"`
	EmotionalStory     string                        `json:"emotional_story"`
	ExpressionBehavior string                        `json:"expression_behavior"`
	AttachmentStyle    string                        `json:"attachment_style"`
	MessagingTone      string                        `json:"messaging_tone"`
	ShadowState        content.ShadowStates          `json:"shadow_state"`
	Weather            content.EnergeticWeather      `json:"weather"`
	CRM                content.CRMSuggestions        `json:"crm"`
	LifePathMeaning    content.Meaning               `json:"life_path_meaning"`
	ExpressionMeaning  content.Meaning               `json:"expression_meaning"`
	Readings           numerology.CoreReadings       `json:"readings"`
	AdvancedReadings   *numerology.AdvancedReadings  `json:"advanced_readings,omitempty"`
	AISummary          string                        `json:"ai_summary,omitempty"`
	AIBios             string                        `json:"ai_bios,omitempty"`
	GeneratedAt        time.Time                     `json:"generated_at"`
}

type ReportService interface {
	BuildReport(ctx context.Context, contactID uuid.UUID) (*Report, error)
}

type reportService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.ContactRepo
	cache       redisclient.Cache
	now         func() time.Time
}

const reportCacheTTL = time.Hour

// NewReportService accepts a nil cache; reports are then rebuilt on every
// request.
func NewReportService(db *gorm.DB, log *logger.Logger, contactRepo repos.ContactRepo, cache redisclient.Cache) ReportService {
	serviceLog := log.With("service", "ReportService")
	return &reportService{
		db:          db,
		log:         serviceLog,
		contactRepo: contactRepo,
		cache:       cache,
		now:         time.Now,
	}
}

func (rs *reportService) BuildReport(ctx context.Context, contactID uuid.UUID) (*Report, error) {
	contact, err := rs.contactRepo.GetByID(ctx, nil, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}

	nowUTC := rs.now().UTC()
	// Personal cycles change across day boundaries, so the cache key
	// carries the evaluation date.
	cacheKey := fmt.Sprintf("report:%s:%s", contact.ID, nowUTC.Format("2006-01-02"))
	if rs.cache != nil {
		var cached Report
		hit, cacheErr := rs.cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr != nil {
			rs.log.Warn("Report cache read failed", "error", cacheErr)
		} else if hit {
			return &cached, nil
		}
	}

	report := rs.renderReport(contact, nowUTC)

	if rs.cache != nil {
		if cacheErr := rs.cache.SetJSON(ctx, cacheKey, report, reportCacheTTL); cacheErr != nil {
			rs.log.Warn("Report cache write failed", "error", cacheErr)
		}
	}
	return report, nil
}

func (rs *reportService) renderReport(contact *types.Contact, nowUTC time.Time) *Report {
	birthTime := ""
	if contact.BirthTime != nil {
		birthTime = *contact.BirthTime
	}

	// Recompute the core bundle so the personal year/month/day reflect the
	// evaluation date; the birth-invariant readings come out identical to
	// the stored jsonb by construction.
	readings := numerology.CalcCoreReadings(numerology.ReadingInput{
		FullName:   contact.FullName,
		Birthdate:  contact.Birthdate,
		LifePath:   contact.LifePath,
		Expression: contact.Expression,
	}, nowUTC)

	advanced := numerology.CalcAdvancedReadings(contact.Birthdate, birthTime, contact.LifePath)

	return &Report{
		ContactID:          contact.ID,
		FullName:           contact.FullName,
		Title:              content.Title(contact.LifePath, contact.Expression),
		Score:              contact.Score,
		LifePath:           contact.LifePath,
		Expression:         contact.Expression,
		Color:              content.Color(contact.LifePath),
		LifePathStory:      content.LifePathStory(contact.LifePath),
		EmotionalStory:     content.EmotionalStory(readings.SoulUrge),
		ExpressionBehavior: content.ExpressionBehavior(contact.Expression),
		AttachmentStyle:    content.AttachmentStyle(contact.LifePath, readings.SoulUrge, readings.Personality),
		MessagingTone:      content.MessagingTone(readings.Personality),
		ShadowState:        content.ShadowState(contact.LifePath),
		Weather:            content.CurrentWeather(readings.PersonalYear, readings.PersonalMonth, readings.ChallengeNumbers.Main),
		CRM:                content.CRMForProfile(contact.LifePath, contact.Score, readings.PersonalYear),
		LifePathMeaning:    content.Meanings(contact.LifePath),
		ExpressionMeaning:  content.Meanings(contact.Expression),
		Readings:           readings,
		AdvancedReadings:   advanced,
		AISummary:          contact.AISummary,
		AIBios:             contact.AIBios,
		GeneratedAt:        nowUTC,
	}
}

// decodeStoredReadings is used by callers that want the bundle exactly as
// persisted at (re)computation time.
func decodeStoredReadings(contact *types.Contact) (*numerology.CoreReadings, error) {
	if len(contact.Readings) == 0 {
		return nil, nil
	}
	var readings numerology.CoreReadings
	if err := json.Unmarshal(contact.Readings, &readings); err != nil {
		return nil, fmt.Errorf("failed to decode stored readings: %w", err)
	}
	return &readings, nil
}
