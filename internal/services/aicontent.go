package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fairwaydreams/fairway-backend/internal/content"
	"github.com/fairwaydreams/fairway-backend/internal/logger"
	"github.com/fairwaydreams/fairway-backend/internal/repos"
	"github.com/fairwaydreams/fairway-backend/internal/types"
)

// AIContentService drafts the outreach summary and bio variants for one
// contact and persists them on the record. Generation failures leave the
// existing annotations untouched.
type AIContentService interface {
	GenerateForContact(ctx context.Context, contactID uuid.UUID) (*types.Contact, error)
}

type aiContentService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.ContactRepo
	client      OpenAIClient
}

func NewAIContentService(db *gorm.DB, log *logger.Logger, contactRepo repos.ContactRepo, client OpenAIClient) AIContentService {
	serviceLog := log.With("service", "AIContentService")
	return &aiContentService{
		db:          db,
		log:         serviceLog,
		contactRepo: contactRepo,
		client:      client,
	}
}

const aiSystemPrompt = `You are a relationship strategist for a private golf club's membership team.
You write short, warm, specific outreach copy grounded in the personality profile you are given.
Never mention numerology, numbers, or how the profile was derived. Plain text only, no markdown.`

func (as *aiContentService) GenerateForContact(ctx context.Context, contactID uuid.UUID) (*types.Contact, error) {
	if as.client == nil {
		return nil, fmt.Errorf("ai content generation is not configured")
	}
	contact, err := as.contactRepo.GetByID(ctx, nil, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}

	profile, err := as.profilePrompt(contact)
	if err != nil {
		return nil, err
	}

	summary, err := as.client.GenerateText(ctx, aiSystemPrompt,
		profile+"\n\nWrite a 3-4 sentence internal summary of how our membership team should approach this person.")
	if err != nil {
		return nil, fmt.Errorf("summary generation failed: %w", err)
	}

	bios, err := as.client.GenerateText(ctx, aiSystemPrompt,
		profile+"\n\nWrite two alternative one-paragraph introduction bios we could use when presenting this person to other members. Separate them with a blank line.")
	if err != nil {
		return nil, fmt.Errorf("bio generation failed: %w", err)
	}

	summary = strings.TrimSpace(summary)
	bios = strings.TrimSpace(bios)

	if err := as.contactRepo.UpdateAIContent(ctx, nil, contact.ID, map[string]interface{}{
		"ai_summary": summary,
		"ai_bios":    bios,
	}); err != nil {
		return nil, fmt.Errorf("failed to persist ai content: %w", err)
	}
	contact.AISummary = summary
	contact.AIBios = bios
	as.log.Info("Generated AI content for contact", "contact_id", contact.ID)
	return contact, nil
}

// profilePrompt flattens the stored profile into prose the model can use
// without leaking the derivation mechanics.
func (as *aiContentService) profilePrompt(contact *types.Contact) (string, error) {
	readings, err := decodeStoredReadings(contact)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Contact: %s\n", contact.FullName)
	fmt.Fprintf(&b, "Archetype: %s\n", content.Title(contact.LifePath, contact.Expression))
	fmt.Fprintf(&b, "Engagement tier: %s\n", content.OpportunityTier(contact.Score))

	lifePathMeaning := content.Meanings(contact.LifePath)
	fmt.Fprintf(&b, "Strengths: %s\n", strings.Join(lifePathMeaning.Strengths, ", "))
	fmt.Fprintf(&b, "Watch-outs: %s\n", strings.Join(lifePathMeaning.Challenges, ", "))
	fmt.Fprintf(&b, "How they carry themselves: %s\n", content.ExpressionBehavior(contact.Expression))

	if readings != nil {
		fmt.Fprintf(&b, "Emotional undercurrent: %s\n", content.EmotionalStory(readings.SoulUrge))
		fmt.Fprintf(&b, "Preferred messaging tone: %s\n", content.MessagingTone(readings.Personality))
		fmt.Fprintf(&b, "Relationship style: %s\n",
			content.AttachmentStyle(contact.LifePath, readings.SoulUrge, readings.Personality))
	}
	return b.String(), nil
}
