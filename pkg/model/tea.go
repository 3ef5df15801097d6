package model

import (
	"net/url"
	"slices"
	"time"
)

// TeaType is the processing category of a tea.
type TeaType string

const (
	TeaTypeGreen   TeaType = "green"
	TeaTypeBlack   TeaType = "black"
	TeaTypeOolong  TeaType = "oolong"
	TeaTypeWhite   TeaType = "white"
	TeaTypePuerh   TeaType = "puerh"
	TeaTypeHerbal  TeaType = "herbal"
	TeaTypeRooibos TeaType = "rooibos"
)

// TeaTypes lists every accepted tea type.
var TeaTypes = []TeaType{
	TeaTypeGreen,
	TeaTypeBlack,
	TeaTypeOolong,
	TeaTypeWhite,
	TeaTypePuerh,
	TeaTypeHerbal,
	TeaTypeRooibos,
}

// Valid reports whether t is one of the accepted tea types.
func (t TeaType) Valid() bool {
	return slices.Contains(TeaTypes, t)
}

// CaffeineLevel is the rough caffeine content of a tea.
type CaffeineLevel string

const (
	CaffeineLevelNone   CaffeineLevel = "none"
	CaffeineLevelLow    CaffeineLevel = "low"
	CaffeineLevelMedium CaffeineLevel = "medium"
	CaffeineLevelHigh   CaffeineLevel = "high"
)

// CaffeineLevels lists every accepted caffeine level.
var CaffeineLevels = []CaffeineLevel{
	CaffeineLevelNone,
	CaffeineLevelLow,
	CaffeineLevelMedium,
	CaffeineLevelHigh,
}

// Valid reports whether l is one of the accepted caffeine levels.
func (l CaffeineLevel) Valid() bool {
	return slices.Contains(CaffeineLevels, l)
}

// Tea is a registered tea with its recommended steeping parameters.
type Tea struct {
	ID               string        `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Name             string        `json:"name" example:"Gyokuro"`
	Type             TeaType       `json:"type" example:"green"`
	Origin           *string       `json:"origin"`
	CaffeineLevel    CaffeineLevel `json:"caffeineLevel" example:"high"`
	SteepTempCelsius int           `json:"steepTempCelsius" example:"60"`
	SteepTimeSeconds int           `json:"steepTimeSeconds" example:"120"`
	Description      *string       `json:"description"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// TeaPage is one page of teas with pagination metadata.
type TeaPage struct {
	Data       []Tea      `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// teaAliases maps internal field names to their wire spellings.
var teaAliases = map[string]string{
	"caffeine_level":     "caffeineLevel",
	"steep_temp_celsius": "steepTempCelsius",
	"steep_time_seconds": "steepTimeSeconds",
}

// CreateTeaRequest is the POST /teas body. CaffeineLevel defaults to
// medium when omitted.
type CreateTeaRequest struct {
	Name             *string        `json:"name" example:"Gyokuro"`
	Type             *TeaType       `json:"type" example:"green"`
	Origin           *string        `json:"origin"`
	CaffeineLevel    *CaffeineLevel `json:"caffeineLevel" example:"high"`
	SteepTempCelsius *int           `json:"steepTempCelsius" example:"60"`
	SteepTimeSeconds *int           `json:"steepTimeSeconds" example:"120"`
	Description      *string        `json:"description"`

	fields
}

// DecodeCreateTeaRequest parses and validates a tea creation body.
func DecodeCreateTeaRequest(data []byte) (*CreateTeaRequest, FieldErrors) {
	raw, fe := parseBody(data, teaAliases)
	if fe != nil {
		return nil, fe
	}

	fe = FieldErrors{}
	req := &CreateTeaRequest{fields: newFields(raw)}
	req.Name = raw.stringField("name", fe)
	req.Type = teaTypeField(raw, "type", fe)
	req.Origin = raw.stringField("origin", fe)
	req.CaffeineLevel = caffeineLevelField(raw, "caffeineLevel", fe)
	req.SteepTempCelsius = raw.intField("steepTempCelsius", fe)
	req.SteepTimeSeconds = raw.intField("steepTimeSeconds", fe)
	req.Description = raw.stringField("description", fe)

	req.validate(fe)

	if len(fe) > 0 {
		return nil, fe
	}

	return req, nil
}

func (r *CreateTeaRequest) validate(fe FieldErrors) {
	switch {
	case r.Name == nil:
		fe.add("name", r.requiredMsg("name"))
	case !validLength(*r.Name, 1, 100):
		fe.add("name", lengthMsg(1, 100))
	}

	switch {
	case r.Type == nil:
		fe.add("type", r.requiredMsg("type"))
	case !r.Type.Valid():
		fe.add("type", oneOfMsg(TeaTypes))
	}

	if r.Origin != nil && !validLength(*r.Origin, 0, 100) {
		fe.add("origin", maxLengthMsg(100))
	}

	switch {
	case r.CaffeineLevel == nil && !r.has("caffeineLevel"):
		level := CaffeineLevelMedium
		r.CaffeineLevel = &level
	case r.CaffeineLevel == nil:
		fe.add("caffeineLevel", r.requiredMsg("caffeineLevel"))
	case !r.CaffeineLevel.Valid():
		fe.add("caffeineLevel", oneOfMsg(CaffeineLevels))
	}

	switch {
	case r.SteepTempCelsius == nil:
		fe.add("steepTempCelsius", r.requiredMsg("steepTempCelsius"))
	case *r.SteepTempCelsius < 60 || *r.SteepTempCelsius > 100:
		fe.add("steepTempCelsius", rangeMsg(60, 100))
	}

	switch {
	case r.SteepTimeSeconds == nil:
		fe.add("steepTimeSeconds", r.requiredMsg("steepTimeSeconds"))
	case *r.SteepTimeSeconds < 1 || *r.SteepTimeSeconds > 600:
		fe.add("steepTimeSeconds", rangeMsg(1, 600))
	}

	if r.Description != nil && !validLength(*r.Description, 0, 1000) {
		fe.add("description", maxLengthMsg(1000))
	}
}

// NewTea materializes the tea described by the request.
func (r *CreateTeaRequest) NewTea(id string, now time.Time) Tea {
	return Tea{
		ID:               id,
		Name:             *r.Name,
		Type:             *r.Type,
		Origin:           r.Origin,
		CaffeineLevel:    *r.CaffeineLevel,
		SteepTempCelsius: *r.SteepTempCelsius,
		SteepTimeSeconds: *r.SteepTimeSeconds,
		Description:      r.Description,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// UpdateTeaRequest is the PUT /teas/{id} body. Every non-nullable field
// is required; omitted origin and description are reset to null.
type UpdateTeaRequest struct {
	Name             *string        `json:"name" example:"Gyokuro"`
	Type             *TeaType       `json:"type" example:"green"`
	Origin           *string        `json:"origin"`
	CaffeineLevel    *CaffeineLevel `json:"caffeineLevel" example:"high"`
	SteepTempCelsius *int           `json:"steepTempCelsius" example:"60"`
	SteepTimeSeconds *int           `json:"steepTimeSeconds" example:"120"`
	Description      *string        `json:"description"`

	fields
}

// DecodeUpdateTeaRequest parses and validates a full-replacement body.
func DecodeUpdateTeaRequest(data []byte) (*UpdateTeaRequest, FieldErrors) {
	raw, fe := parseBody(data, teaAliases)
	if fe != nil {
		return nil, fe
	}

	fe = FieldErrors{}
	req := &UpdateTeaRequest{fields: newFields(raw)}
	req.Name = raw.stringField("name", fe)
	req.Type = teaTypeField(raw, "type", fe)
	req.Origin = raw.stringField("origin", fe)
	req.CaffeineLevel = caffeineLevelField(raw, "caffeineLevel", fe)
	req.SteepTempCelsius = raw.intField("steepTempCelsius", fe)
	req.SteepTimeSeconds = raw.intField("steepTimeSeconds", fe)
	req.Description = raw.stringField("description", fe)

	req.validate(fe)

	if len(fe) > 0 {
		return nil, fe
	}

	return req, nil
}

func (r *UpdateTeaRequest) validate(fe FieldErrors) {
	switch {
	case r.Name == nil:
		fe.add("name", r.requiredMsg("name"))
	case !validLength(*r.Name, 1, 100):
		fe.add("name", lengthMsg(1, 100))
	}

	switch {
	case r.Type == nil:
		fe.add("type", r.requiredMsg("type"))
	case !r.Type.Valid():
		fe.add("type", oneOfMsg(TeaTypes))
	}

	if r.Origin != nil && !validLength(*r.Origin, 0, 100) {
		fe.add("origin", maxLengthMsg(100))
	}

	switch {
	case r.CaffeineLevel == nil:
		fe.add("caffeineLevel", r.requiredMsg("caffeineLevel"))
	case !r.CaffeineLevel.Valid():
		fe.add("caffeineLevel", oneOfMsg(CaffeineLevels))
	}

	switch {
	case r.SteepTempCelsius == nil:
		fe.add("steepTempCelsius", r.requiredMsg("steepTempCelsius"))
	case *r.SteepTempCelsius < 60 || *r.SteepTempCelsius > 100:
		fe.add("steepTempCelsius", rangeMsg(60, 100))
	}

	switch {
	case r.SteepTimeSeconds == nil:
		fe.add("steepTimeSeconds", r.requiredMsg("steepTimeSeconds"))
	case *r.SteepTimeSeconds < 1 || *r.SteepTimeSeconds > 600:
		fe.add("steepTimeSeconds", rangeMsg(1, 600))
	}

	if r.Description != nil && !validLength(*r.Description, 0, 1000) {
		fe.add("description", maxLengthMsg(1000))
	}
}

// Apply replaces every mutable field of existing and stamps updatedAt.
func (r *UpdateTeaRequest) Apply(existing Tea, now time.Time) Tea {
	out := existing
	out.Name = *r.Name
	out.Type = *r.Type
	out.Origin = r.Origin
	out.CaffeineLevel = *r.CaffeineLevel
	out.SteepTempCelsius = *r.SteepTempCelsius
	out.SteepTimeSeconds = *r.SteepTimeSeconds
	out.Description = r.Description
	out.UpdatedAt = now

	return out
}

// PatchTeaRequest is the PATCH /teas/{id} body. Only keys present in
// the request are applied; origin and description accept explicit null.
type PatchTeaRequest struct {
	Name             *string        `json:"name"`
	Type             *TeaType       `json:"type"`
	Origin           *string        `json:"origin"`
	CaffeineLevel    *CaffeineLevel `json:"caffeineLevel"`
	SteepTempCelsius *int           `json:"steepTempCelsius"`
	SteepTimeSeconds *int           `json:"steepTimeSeconds"`
	Description      *string        `json:"description"`

	fields
}

// DecodePatchTeaRequest parses and validates a partial-update body.
func DecodePatchTeaRequest(data []byte) (*PatchTeaRequest, FieldErrors) {
	raw, fe := parseBody(data, teaAliases)
	if fe != nil {
		return nil, fe
	}

	fe = FieldErrors{}
	req := &PatchTeaRequest{fields: newFields(raw)}
	req.Name = raw.stringField("name", fe)
	req.Type = teaTypeField(raw, "type", fe)
	req.Origin = raw.stringField("origin", fe)
	req.CaffeineLevel = caffeineLevelField(raw, "caffeineLevel", fe)
	req.SteepTempCelsius = raw.intField("steepTempCelsius", fe)
	req.SteepTimeSeconds = raw.intField("steepTimeSeconds", fe)
	req.Description = raw.stringField("description", fe)

	req.validate(fe)

	if len(fe) > 0 {
		return nil, fe
	}

	return req, nil
}

func (r *PatchTeaRequest) validate(fe FieldErrors) {
	if r.has("name") {
		switch {
		case r.Name == nil:
			fe.add("name", "may not be null")
		case !validLength(*r.Name, 1, 100):
			fe.add("name", lengthMsg(1, 100))
		}
	}

	if r.has("type") {
		switch {
		case r.Type == nil:
			fe.add("type", "may not be null")
		case !r.Type.Valid():
			fe.add("type", oneOfMsg(TeaTypes))
		}
	}

	if r.Origin != nil && !validLength(*r.Origin, 0, 100) {
		fe.add("origin", maxLengthMsg(100))
	}

	if r.has("caffeineLevel") {
		switch {
		case r.CaffeineLevel == nil:
			fe.add("caffeineLevel", "may not be null")
		case !r.CaffeineLevel.Valid():
			fe.add("caffeineLevel", oneOfMsg(CaffeineLevels))
		}
	}

	if r.has("steepTempCelsius") {
		switch {
		case r.SteepTempCelsius == nil:
			fe.add("steepTempCelsius", "may not be null")
		case *r.SteepTempCelsius < 60 || *r.SteepTempCelsius > 100:
			fe.add("steepTempCelsius", rangeMsg(60, 100))
		}
	}

	if r.has("steepTimeSeconds") {
		switch {
		case r.SteepTimeSeconds == nil:
			fe.add("steepTimeSeconds", "may not be null")
		case *r.SteepTimeSeconds < 1 || *r.SteepTimeSeconds > 600:
			fe.add("steepTimeSeconds", rangeMsg(1, 600))
		}
	}

	if r.Description != nil && !validLength(*r.Description, 0, 1000) {
		fe.add("description", maxLengthMsg(1000))
	}
}

// Apply overlays the present fields onto existing and stamps updatedAt.
func (r *PatchTeaRequest) Apply(existing Tea, now time.Time) Tea {
	out := existing

	if r.Name != nil {
		out.Name = *r.Name
	}

	if r.Type != nil {
		out.Type = *r.Type
	}

	if r.has("origin") {
		out.Origin = r.Origin
	}

	if r.CaffeineLevel != nil {
		out.CaffeineLevel = *r.CaffeineLevel
	}

	if r.SteepTempCelsius != nil {
		out.SteepTempCelsius = *r.SteepTempCelsius
	}

	if r.SteepTimeSeconds != nil {
		out.SteepTimeSeconds = *r.SteepTimeSeconds
	}

	if r.has("description") {
		out.Description = r.Description
	}

	out.UpdatedAt = now

	return out
}

// TeaQuery filters and paginates tea listings.
type TeaQuery struct {
	Page          int
	Limit         int
	Type          *TeaType
	CaffeineLevel *CaffeineLevel
}

// DecodeTeaQuery parses and validates tea list parameters.
func DecodeTeaQuery(values url.Values) (*TeaQuery, FieldErrors) {
	fe := FieldErrors{}
	q := &TeaQuery{Page: 1, Limit: 20}

	parsePagination(values, &q.Page, &q.Limit, fe)

	if s := values.Get("type"); s != "" {
		t := TeaType(s)
		if !t.Valid() {
			fe.add("type", oneOfMsg(TeaTypes))
		} else {
			q.Type = &t
		}
	}

	if s := queryValue(values, "caffeineLevel", "caffeine_level"); s != "" {
		l := CaffeineLevel(s)
		if !l.Valid() {
			fe.add("caffeineLevel", oneOfMsg(CaffeineLevels))
		} else {
			q.CaffeineLevel = &l
		}
	}

	if len(fe) > 0 {
		return nil, fe
	}

	return q, nil
}

// teaTypeField extracts an optional tea type enum value.
func teaTypeField(raw rawBody, key string, fe FieldErrors) *TeaType {
	s := raw.stringField(key, fe)
	if s == nil {
		return nil
	}

	t := TeaType(*s)

	return &t
}

// caffeineLevelField extracts an optional caffeine level enum value.
func caffeineLevelField(raw rawBody, key string, fe FieldErrors) *CaffeineLevel {
	s := raw.stringField(key, fe)
	if s == nil {
		return nil
	}

	l := CaffeineLevel(*s)

	return &l
}
