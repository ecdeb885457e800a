package usecase

import (
	"net/mail"
	"strings"
)

var leadSources = map[string]bool{
	"website":        true,
	"social_media":   true,
	"referral":       true,
	"email_campaign": true,
	"cold_outreach":  true,
	"other":          true,
}

var leadStatuses = map[string]bool{
	"new":       true,
	"contacted": true,
	"qualified": true,
	"converted": true,
}

var leadTemperatures = map[string]bool{
	"hot":  true,
	"warm": true,
	"cold": true,
}

var bookingTypes = map[string]bool{
	"consultation":     true,
	"coaching_session": true,
	"follow_up":        true,
	"discovery_call":   true,
}

var bookingStatuses = map[string]bool{
	"scheduled": true,
	"completed": true,
	"cancelled": true,
	"no_show":   true,
}

var callStatuses = map[string]bool{
	"completed":   true,
	"failed":      true,
	"in_progress": true,
}

var messagePlatforms = map[string]bool{
	"whatsapp": true,
	"email":    true,
	"website":  true,
	"sms":      true,
}

var messageTypes = map[string]bool{
	"incoming": true,
	"outgoing": true,
}

var workflowStatuses = map[string]bool{
	"active": true,
	"paused": true,
	"failed": true,
}

var engagementKinds = map[string]bool{
	"opened":  true,
	"clicked": true,
	"replied": true,
}

func ValidateCreateLeadInput(input CreateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	if input.Source != "" && !leadSources[input.Source] {
		errs = append(errs, ValidationError{"source", "is not a known source"})
	}
	if input.Status != "" && !leadStatuses[input.Status] {
		errs = append(errs, ValidationError{"status", "is not a known status"})
	}
	if input.Temperature != "" && !leadTemperatures[input.Temperature] {
		errs = append(errs, ValidationError{"temperature", "is not a known temperature"})
	}

	return errs
}

func ValidateCreateBookingInput(input CreateBookingInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.ClientName) == "" {
		errs = append(errs, ValidationError{"client_name", "is required"})
	}

	if input.ClientEmail != "" {
		if _, err := mail.ParseAddress(input.ClientEmail); err != nil {
			errs = append(errs, ValidationError{"client_email", "is invalid"})
		}
	}

	if input.ScheduledAt.IsZero() {
		errs = append(errs, ValidationError{"scheduled_at", "is required"})
	}

	if input.DurationMinutes < 15 || input.DurationMinutes > 480 {
		errs = append(errs, ValidationError{"duration_minutes", "must be between 15 and 480"})
	}

	if input.BookingType != "" && !bookingTypes[input.BookingType] {
		errs = append(errs, ValidationError{"booking_type", "is not a known booking type"})
	}
	if input.Status != "" && !bookingStatuses[input.Status] {
		errs = append(errs, ValidationError{"status", "is not a known status"})
	}

	return errs
}

func ValidateCreateVoiceCallInput(input CreateVoiceCallInput) ValidationErrors {
	var errs ValidationErrors

	if input.DurationSeconds < 0 {
		errs = append(errs, ValidationError{"duration_seconds", "must not be negative"})
	}

	if input.Status == "" {
		errs = append(errs, ValidationError{"status", "is required"})
	} else if !callStatuses[input.Status] {
		errs = append(errs, ValidationError{"status", "is not a known status"})
	}

	return errs
}

func ValidateCreateMessageInput(input CreateMessageInput) ValidationErrors {
	var errs ValidationErrors

	if input.Platform == "" {
		errs = append(errs, ValidationError{"platform", "is required"})
	} else if !messagePlatforms[input.Platform] {
		errs = append(errs, ValidationError{"platform", "is not a known platform"})
	}

	if input.MessageType == "" {
		errs = append(errs, ValidationError{"message_type", "is required"})
	} else if !messageTypes[input.MessageType] {
		errs = append(errs, ValidationError{"message_type", "is not a known message type"})
	}

	if strings.TrimSpace(input.Content) == "" {
		errs = append(errs, ValidationError{"content", "is required"})
	}

	if input.ResponseTimeSeconds < 0 {
		errs = append(errs, ValidationError{"response_time_seconds", "must not be negative"})
	}

	return errs
}

func ValidateCreateWorkflowInput(input CreateWorkflowInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}

	if input.Status != "" && !workflowStatuses[input.Status] {
		errs = append(errs, ValidationError{"status", "is not a known status"})
	}

	if input.SuccessRate < 0 || input.SuccessRate > 100 {
		errs = append(errs, ValidationError{"success_rate", "must be between 0 and 100"})
	}

	if input.ActionsCount < 0 {
		errs = append(errs, ValidationError{"actions_count", "must not be negative"})
	}

	return errs
}

func ValidateTriggerAutomationInput(input TriggerAutomationInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.LeadID) == "" {
		errs = append(errs, ValidationError{"lead_id", "is required"})
	}
	if strings.TrimSpace(input.TriggerType) == "" {
		errs = append(errs, ValidationError{"trigger_type", "is required"})
	}

	return errs
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
