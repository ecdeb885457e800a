package usecase

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/coachflow/coachflow-backend/internal/cache"
	"github.com/coachflow/coachflow-backend/internal/entity"
	"github.com/coachflow/coachflow-backend/internal/infra/queue"
)

const (
	emailQueueCacheEntity     = "email-queue"
	emailAnalyticsCacheEntity = "email-analytics"
)

type automationTemplate struct {
	Subject string
	Body    string
}

// Subject and Body take the lead name as their only verb argument.
var automationTemplates = map[string]automationTemplate{
	"lead_created": {
		Subject: "Welcome aboard, %s!",
		Body:    "Hi %s, thanks for your interest. Your coach will reach out shortly to set up a first conversation.",
	},
	"lead_qualified": {
		Subject: "Your next step, %s",
		Body:    "Hi %s, based on our conversation we put together a plan proposal. Book a slot whenever suits you.",
	},
	"booking_confirmed": {
		Subject: "Your session is confirmed, %s",
		Body:    "Hi %s, your coaching session is booked. You will receive a reminder one day before.",
	},
	"follow_up": {
		Subject: "Checking in, %s",
		Body:    "Hi %s, just following up on our last conversation. Reply to this email and we pick it up from there.",
	},
}

type TriggerAutomationInput struct {
	LeadID      string `json:"lead_id"`
	TriggerType string `json:"trigger_type"`
}

type EmailAnalytics struct {
	TotalSent    int `json:"totalSent"`
	TotalOpened  int `json:"totalOpened"`
	TotalClicked int `json:"totalClicked"`
	TotalReplied int `json:"totalReplied"`
	OpenRate     int `json:"openRate"`
	ClickRate    int `json:"clickRate"`
	ReplyRate    int `json:"replyRate"`
}

// EmailAutomationService enqueues automation emails for a user's leads,
// hands them to the dispatch worker through the queue, and tracks
// engagement for the analytics panel.
type EmailAutomationService struct {
	Emails entity.EmailQueueRepositoryInterface
	Leads  entity.LeadRepositoryInterface
	Queue  QueueProducerInterface
	Cache  *cache.Store
	Log    *zap.Logger
}

func NewEmailAutomationService(
	emails entity.EmailQueueRepositoryInterface,
	leads entity.LeadRepositoryInterface,
	producer QueueProducerInterface,
	store *cache.Store,
	log *zap.Logger,
) *EmailAutomationService {
	return &EmailAutomationService{Emails: emails, Leads: leads, Queue: producer, Cache: store, Log: log}
}

// Trigger verifies the lead belongs to the user, records a pending email and
// publishes the dispatch job. The row stays behind with status failed when
// the job cannot be published, so the panel shows what happened.
func (s *EmailAutomationService) Trigger(ctx context.Context, userID string, input TriggerAutomationInput) (*entity.EmailQueueItem, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	if errs := ValidateTriggerAutomationInput(input); len(errs) > 0 {
		return nil, errs
	}

	tmpl, ok := automationTemplates[input.TriggerType]
	if !ok {
		return nil, ValidationErrors{{Field: "trigger_type", Message: "is not a known trigger"}}
	}

	lead, err := s.Leads.FindByUser(ctx, userID, input.LeadID)
	if err != nil {
		return nil, err
	}

	item := &entity.EmailQueueItem{
		UserID:      userID,
		LeadID:      lead.ID,
		TriggerType: input.TriggerType,
		Subject:     fmt.Sprintf(tmpl.Subject, lead.Name),
		Body:        fmt.Sprintf(tmpl.Body, lead.Name),
		Status:      entity.EmailStatusPending,
	}

	if err := s.Emails.Insert(ctx, item); err != nil {
		s.Log.Error("enqueueing automation email failed", zap.String("user_id", userID), zap.Error(err))
		return nil, &TechnicalError{Code: "EMAIL_INSERT", Message: "failed to enqueue email", Err: err}
	}

	job := queue.EmailJob{
		EmailID: item.ID,
		UserID:  userID,
		To:      lead.Email,
		Name:    lead.Name,
		Subject: item.Subject,
		Body:    item.Body,
	}
	if err := s.Queue.PublishEmailJob(ctx, job); err != nil {
		s.Log.Error("publishing email job failed", zap.String("email_id", item.ID), zap.Error(err))
		if markErr := s.Emails.MarkStatus(ctx, item.ID, entity.EmailStatusFailed); markErr != nil {
			s.Log.Error("marking email failed after publish error", zap.String("email_id", item.ID), zap.Error(markErr))
		}
		s.invalidate(userID)
		return nil, &TechnicalError{Code: "EMAIL_PUBLISH", Message: "failed to dispatch email", Err: err}
	}

	s.invalidate(userID)
	return item, nil
}

// RecordEngagement stamps opened/clicked/replied on an email the user owns.
func (s *EmailAutomationService) RecordEngagement(ctx context.Context, userID, emailID, kind string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	if !engagementKinds[kind] {
		return ValidationErrors{{Field: "engagement_type", Message: "must be opened, clicked or replied"}}
	}

	if err := s.Emails.SetEngagement(ctx, userID, emailID, kind); err != nil {
		return err
	}

	s.invalidate(userID)
	return nil
}

func (s *EmailAutomationService) Analytics(ctx context.Context, userID string) (*EmailAnalytics, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	v, err := s.Cache.GetOrFetch(ctx, cache.Key{Entity: emailAnalyticsCacheEntity, UserID: userID}, func(ctx context.Context) (any, error) {
		items, err := s.Emails.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return computeEmailAnalytics(items), nil
	})
	if err != nil {
		s.Log.Error("computing email analytics failed", zap.String("user_id", userID), zap.Error(err))
		return &EmailAnalytics{}, err
	}

	return v.(*EmailAnalytics), nil
}

func computeEmailAnalytics(items []entity.EmailQueueItem) *EmailAnalytics {
	a := &EmailAnalytics{}
	for _, e := range items {
		if e.Status == entity.EmailStatusSent {
			a.TotalSent++
		}
		if e.OpenedAt != nil {
			a.TotalOpened++
		}
		if e.ClickedAt != nil {
			a.TotalClicked++
		}
		if e.RepliedAt != nil {
			a.TotalReplied++
		}
	}
	if a.TotalSent > 0 {
		a.OpenRate = int(math.Round(float64(a.TotalOpened) / float64(a.TotalSent) * 100))
		a.ClickRate = int(math.Round(float64(a.TotalClicked) / float64(a.TotalSent) * 100))
		a.ReplyRate = int(math.Round(float64(a.TotalReplied) / float64(a.TotalSent) * 100))
	}
	return a
}

func (s *EmailAutomationService) invalidate(userID string) {
	s.Cache.Invalidate(cache.Key{Entity: emailQueueCacheEntity, UserID: userID})
	s.Cache.Invalidate(cache.Key{Entity: emailAnalyticsCacheEntity, UserID: userID})
}
