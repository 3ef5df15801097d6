package model

import (
	"net/url"
	"slices"
	"time"
)

// BrewStatus is the lifecycle state of a brew session.
type BrewStatus string

const (
	BrewStatusPreparing BrewStatus = "preparing"
	BrewStatusSteeping  BrewStatus = "steeping"
	BrewStatusReady     BrewStatus = "ready"
	BrewStatusServed    BrewStatus = "served"
	BrewStatusCold      BrewStatus = "cold"
)

// BrewStatuses lists every accepted brew status.
var BrewStatuses = []BrewStatus{
	BrewStatusPreparing,
	BrewStatusSteeping,
	BrewStatusReady,
	BrewStatusServed,
	BrewStatusCold,
}

// Valid reports whether s is one of the accepted brew statuses.
func (s BrewStatus) Valid() bool {
	return slices.Contains(BrewStatuses, s)
}

// Brew is a brewing session tying a teapot and a tea together. New
// brews always start in the preparing state.
type Brew struct {
	ID               string     `json:"id" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	TeapotID         string     `json:"teapotId" example:"b5e7f2a0-8f3d-4e6b-9c1a-2d4f6e8a0c1b"`
	TeaID            string     `json:"teaId" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Status           BrewStatus `json:"status" example:"steeping"`
	WaterTempCelsius int        `json:"waterTempCelsius" example:"80"`
	Notes            *string    `json:"notes"`
	StartedAt        time.Time  `json:"startedAt"`
	CompletedAt      *time.Time `json:"completedAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// BrewWithDetails is a brew with its teapot and tea embedded.
type BrewWithDetails struct {
	Brew

	Teapot Teapot `json:"teapot"`
	Tea    Tea    `json:"tea"`
}

// BrewPage is one page of brews with pagination metadata.
type BrewPage struct {
	Data       []Brew     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// brewAliases maps internal field names to their wire spellings.
var brewAliases = map[string]string{
	"teapot_id":          "teapotId",
	"tea_id":             "teaId",
	"water_temp_celsius": "waterTempCelsius",
	"completed_at":       "completedAt",
}

// CreateBrewRequest is the POST /brews body. WaterTempCelsius falls
// back to the tea's recommended steeping temperature when omitted.
type CreateBrewRequest struct {
	TeapotID         *string `json:"teapotId" example:"b5e7f2a0-8f3d-4e6b-9c1a-2d4f6e8a0c1b"`
	TeaID            *string `json:"teaId" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	WaterTempCelsius *int    `json:"waterTempCelsius" example:"80"`
	Notes            *string `json:"notes"`

	fields
}

// DecodeCreateBrewRequest parses and validates a brew creation body.
func DecodeCreateBrewRequest(data []byte) (*CreateBrewRequest, FieldErrors) {
	raw, fe := parseBody(data, brewAliases)
	if fe != nil {
		return nil, fe
	}

	fe = FieldErrors{}
	req := &CreateBrewRequest{fields: newFields(raw)}
	req.TeapotID = raw.stringField("teapotId", fe)
	req.TeaID = raw.stringField("teaId", fe)
	req.WaterTempCelsius = raw.intField("waterTempCelsius", fe)
	req.Notes = raw.stringField("notes", fe)

	req.validate(fe)

	if len(fe) > 0 {
		return nil, fe
	}

	return req, nil
}

func (r *CreateBrewRequest) validate(fe FieldErrors) {
	if r.TeapotID == nil {
		fe.add("teapotId", r.requiredMsg("teapotId"))
	}

	if r.TeaID == nil {
		fe.add("teaId", r.requiredMsg("teaId"))
	}

	if r.WaterTempCelsius != nil && (*r.WaterTempCelsius < 60 || *r.WaterTempCelsius > 100) {
		fe.add("waterTempCelsius", rangeMsg(60, 100))
	}

	if r.Notes != nil && !validLength(*r.Notes, 0, 500) {
		fe.add("notes", maxLengthMsg(500))
	}
}

// NewBrew materializes the brew described by the request. The water
// temperature falls back to defaultTempCelsius when the request leaves
// it unset.
func (r *CreateBrewRequest) NewBrew(id string, defaultTempCelsius int, now time.Time) Brew {
	temp := defaultTempCelsius
	if r.WaterTempCelsius != nil {
		temp = *r.WaterTempCelsius
	}

	return Brew{
		ID:               id,
		TeapotID:         *r.TeapotID,
		TeaID:            *r.TeaID,
		Status:           BrewStatusPreparing,
		WaterTempCelsius: temp,
		Notes:            r.Notes,
		StartedAt:        now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// PatchBrewRequest is the PATCH /brews/{id} body. Only the lifecycle
// fields are patchable; notes and completedAt accept explicit null.
type PatchBrewRequest struct {
	Status      *BrewStatus `json:"status" example:"ready"`
	Notes       *string     `json:"notes"`
	CompletedAt *time.Time  `json:"completedAt"`

	fields
}

// DecodePatchBrewRequest parses and validates a partial-update body.
func DecodePatchBrewRequest(data []byte) (*PatchBrewRequest, FieldErrors) {
	raw, fe := parseBody(data, brewAliases)
	if fe != nil {
		return nil, fe
	}

	fe = FieldErrors{}
	req := &PatchBrewRequest{fields: newFields(raw)}
	req.Status = brewStatusField(raw, "status", fe)
	req.Notes = raw.stringField("notes", fe)
	req.CompletedAt = raw.timeField("completedAt", fe)

	req.validate(fe)

	if len(fe) > 0 {
		return nil, fe
	}

	return req, nil
}

func (r *PatchBrewRequest) validate(fe FieldErrors) {
	if r.has("status") {
		switch {
		case r.Status == nil:
			fe.add("status", "may not be null")
		case !r.Status.Valid():
			fe.add("status", oneOfMsg(BrewStatuses))
		}
	}

	if r.Notes != nil && !validLength(*r.Notes, 0, 500) {
		fe.add("notes", maxLengthMsg(500))
	}
}

// Apply overlays the present fields onto existing and stamps updatedAt.
func (r *PatchBrewRequest) Apply(existing Brew, now time.Time) Brew {
	out := existing

	if r.Status != nil {
		out.Status = *r.Status
	}

	if r.has("notes") {
		out.Notes = r.Notes
	}

	if r.has("completedAt") {
		out.CompletedAt = r.CompletedAt
	}

	out.UpdatedAt = now

	return out
}

// BrewQuery filters and paginates brew listings.
type BrewQuery struct {
	Page     int
	Limit    int
	Status   *BrewStatus
	TeapotID string
	TeaID    string
}

// DecodeBrewQuery parses and validates brew list parameters.
func DecodeBrewQuery(values url.Values) (*BrewQuery, FieldErrors) {
	fe := FieldErrors{}
	q := &BrewQuery{Page: 1, Limit: 20}

	parsePagination(values, &q.Page, &q.Limit, fe)

	if s := values.Get("status"); s != "" {
		st := BrewStatus(s)
		if !st.Valid() {
			fe.add("status", oneOfMsg(BrewStatuses))
		} else {
			q.Status = &st
		}
	}

	q.TeapotID = queryValue(values, "teapotId", "teapot_id")
	q.TeaID = queryValue(values, "teaId", "tea_id")

	if len(fe) > 0 {
		return nil, fe
	}

	return q, nil
}

// brewStatusField extracts an optional brew status enum value.
func brewStatusField(raw rawBody, key string, fe FieldErrors) *BrewStatus {
	s := raw.stringField(key, fe)
	if s == nil {
		return nil
	}

	st := BrewStatus(*s)

	return &st
}
