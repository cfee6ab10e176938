package validator

import (
	"encoding/json"
	"fmt"

	"github.com/salescraft/outreach-backend/internal/entity"
)

// Validator validates inbound request payloads
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerate checks the pre-built prompt contract. The user message
// is the only required field; a missing one is a client error, never
// retried.
func (v *Validator) ValidateGenerate(req *entity.GenerateRequest) error {
	if req.UserMessage == "" {
		return fmt.Errorf("%w: userMessage", entity.ErrMissingUserMessage)
	}
	return nil
}

// ValidateOutreach checks the structured generation contract
func (v *Validator) ValidateOutreach(req *entity.OutreachRequest) error {
	if !req.Channel.IsValid() {
		return fmt.Errorf("%w: channel %q", entity.ErrUnknownChannel, req.Channel)
	}
	if req.Channel == entity.ChannelCustom && req.CustomPrompt == "" {
		return fmt.Errorf("%w: customPrompt", entity.ErrMissingField)
	}
	return nil
}

// ValidateSettingsSave checks category whitelist and payload presence
func (v *Validator) ValidateSettingsSave(category string, data json.RawMessage) error {
	if category == "" || len(data) == 0 {
		return entity.ErrMissingPayload
	}
	if category != entity.SettingsCategoryPrompts && category != entity.SettingsCategoryAPIConfig {
		return fmt.Errorf("%w: %s", entity.ErrInvalidCategory, category)
	}
	if !json.Valid(data) {
		return fmt.Errorf("%w: data is not valid JSON", entity.ErrInvalidParameter)
	}
	return nil
}
