package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fieldNames(errs ValidationErrors) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}

func TestValidateCreateLeadInput(t *testing.T) {
	tests := []struct {
		name   string
		input  CreateLeadInput
		fields []string
	}{
		{
			name:  "valid",
			input: CreateLeadInput{Name: "Ana", Email: "ana@example.com"},
		},
		{
			name:   "missing name and email",
			input:  CreateLeadInput{},
			fields: []string{"name", "email"},
		},
		{
			name:   "malformed email",
			input:  CreateLeadInput{Name: "Ana", Email: "ana@@example"},
			fields: []string{"email"},
		},
		{
			name:   "unknown enums",
			input:  CreateLeadInput{Name: "Ana", Email: "ana@example.com", Source: "fax", Status: "maybe", Temperature: "tepid"},
			fields: []string{"source", "status", "temperature"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCreateLeadInput(tt.input)
			if len(tt.fields) == 0 {
				assert.Empty(t, errs)
				return
			}
			assert.ElementsMatch(t, tt.fields, fieldNames(errs))
		})
	}
}

func TestValidateCreateBookingInput(t *testing.T) {
	scheduled := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		input  CreateBookingInput
		fields []string
	}{
		{
			name:  "valid",
			input: CreateBookingInput{ClientName: "Ana", ScheduledAt: scheduled, DurationMinutes: 60},
		},
		{
			name:   "duration below minimum",
			input:  CreateBookingInput{ClientName: "Ana", ScheduledAt: scheduled, DurationMinutes: 14},
			fields: []string{"duration_minutes"},
		},
		{
			name:   "duration above maximum",
			input:  CreateBookingInput{ClientName: "Ana", ScheduledAt: scheduled, DurationMinutes: 481},
			fields: []string{"duration_minutes"},
		},
		{
			name:  "duration at bounds",
			input: CreateBookingInput{ClientName: "Ana", ScheduledAt: scheduled, DurationMinutes: 15},
		},
		{
			name:   "missing schedule",
			input:  CreateBookingInput{ClientName: "Ana", DurationMinutes: 60},
			fields: []string{"scheduled_at"},
		},
		{
			name:   "unknown booking type",
			input:  CreateBookingInput{ClientName: "Ana", ScheduledAt: scheduled, DurationMinutes: 60, BookingType: "séance"},
			fields: []string{"booking_type"},
		},
		{
			name:   "bad client email",
			input:  CreateBookingInput{ClientName: "Ana", ClientEmail: "nope", ScheduledAt: scheduled, DurationMinutes: 60},
			fields: []string{"client_email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCreateBookingInput(tt.input)
			if len(tt.fields) == 0 {
				assert.Empty(t, errs)
				return
			}
			assert.ElementsMatch(t, tt.fields, fieldNames(errs))
		})
	}
}

func TestValidateCreateVoiceCallInput(t *testing.T) {
	assert.Empty(t, ValidateCreateVoiceCallInput(CreateVoiceCallInput{DurationSeconds: 90, Status: "completed"}))

	errs := ValidateCreateVoiceCallInput(CreateVoiceCallInput{DurationSeconds: -1})
	assert.ElementsMatch(t, []string{"duration_seconds", "status"}, fieldNames(errs))

	errs = ValidateCreateVoiceCallInput(CreateVoiceCallInput{DurationSeconds: 10, Status: "ringing"})
	assert.ElementsMatch(t, []string{"status"}, fieldNames(errs))
}

func TestValidateCreateMessageInput(t *testing.T) {
	assert.Empty(t, ValidateCreateMessageInput(CreateMessageInput{
		Platform:    "whatsapp",
		MessageType: "incoming",
		Content:     "hello",
	}))

	errs := ValidateCreateMessageInput(CreateMessageInput{Platform: "telegram", MessageType: "broadcast"})
	assert.ElementsMatch(t, []string{"platform", "message_type", "content"}, fieldNames(errs))

	errs = ValidateCreateMessageInput(CreateMessageInput{
		Platform:            "sms",
		MessageType:         "outgoing",
		Content:             "hi",
		ResponseTimeSeconds: -5,
	})
	assert.ElementsMatch(t, []string{"response_time_seconds"}, fieldNames(errs))
}

func TestValidateCreateWorkflowInput(t *testing.T) {
	assert.Empty(t, ValidateCreateWorkflowInput(CreateWorkflowInput{Name: "Welcome sequence", SuccessRate: 90}))

	errs := ValidateCreateWorkflowInput(CreateWorkflowInput{SuccessRate: 101, ActionsCount: -1})
	assert.ElementsMatch(t, []string{"name", "success_rate", "actions_count"}, fieldNames(errs))

	errs = ValidateCreateWorkflowInput(CreateWorkflowInput{Name: "X", Status: "dormant"})
	assert.ElementsMatch(t, []string{"status"}, fieldNames(errs))
}

func TestValidationErrorsMessageJoins(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "email", Message: "is invalid"},
	}
	assert.Equal(t, "name: is required; email: is invalid", errs.Error())
}
