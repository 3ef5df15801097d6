package model

import (
	"time"
)

// Steep is a single infusion of a brew. Steeps are immutable once
// recorded and are numbered per brew starting at 1.
type Steep struct {
	ID              string    `json:"id" example:"3a2d5f8e-1b4c-4d7a-9e6f-8c0b2a4d6e8f"`
	BrewID          string    `json:"brewId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	SteepNumber     int       `json:"steepNumber" example:"1"`
	DurationSeconds int       `json:"durationSeconds" example:"45"`
	Rating          *int      `json:"rating"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SteepPage is one page of steeps with pagination metadata.
type SteepPage struct {
	Data       []Steep    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// steepAliases maps internal field names to their wire spellings.
var steepAliases = map[string]string{
	"duration_seconds": "durationSeconds",
}

// CreateSteepRequest is the POST /brews/{brewId}/steeps body. The steep
// number is assigned server-side.
type CreateSteepRequest struct {
	DurationSeconds *int    `json:"durationSeconds" example:"45"`
	Rating          *int    `json:"rating" example:"4"`
	Notes           *string `json:"notes"`

	fields
}

// DecodeCreateSteepRequest parses and validates a steep creation body.
func DecodeCreateSteepRequest(data []byte) (*CreateSteepRequest, FieldErrors) {
	raw, fe := parseBody(data, steepAliases)
	if fe != nil {
		return nil, fe
	}

	fe = FieldErrors{}
	req := &CreateSteepRequest{fields: newFields(raw)}
	req.DurationSeconds = raw.intField("durationSeconds", fe)
	req.Rating = raw.intField("rating", fe)
	req.Notes = raw.stringField("notes", fe)

	req.validate(fe)

	if len(fe) > 0 {
		return nil, fe
	}

	return req, nil
}

func (r *CreateSteepRequest) validate(fe FieldErrors) {
	switch {
	case r.DurationSeconds == nil:
		fe.add("durationSeconds", r.requiredMsg("durationSeconds"))
	case *r.DurationSeconds < 1:
		fe.add("durationSeconds", minMsg(1))
	}

	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		fe.add("rating", rangeMsg(1, 5))
	}

	if r.Notes != nil && !validLength(*r.Notes, 0, 200) {
		fe.add("notes", maxLengthMsg(200))
	}
}

// NewSteep materializes the steep described by the request. The steep
// number is left at zero for the store to assign.
func (r *CreateSteepRequest) NewSteep(id, brewID string, now time.Time) Steep {
	return Steep{
		ID:              id,
		BrewID:          brewID,
		DurationSeconds: *r.DurationSeconds,
		Rating:          r.Rating,
		Notes:           r.Notes,
		CreatedAt:       now,
	}
}
