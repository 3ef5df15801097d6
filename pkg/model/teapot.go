package model

import (
	"net/url"
	"slices"
	"time"
)

// TeapotMaterial is the material a teapot is made of.
type TeapotMaterial string

const (
	TeapotMaterialCeramic        TeapotMaterial = "ceramic"
	TeapotMaterialCastIron       TeapotMaterial = "cast-iron"
	TeapotMaterialGlass          TeapotMaterial = "glass"
	TeapotMaterialPorcelain      TeapotMaterial = "porcelain"
	TeapotMaterialClay           TeapotMaterial = "clay"
	TeapotMaterialStainlessSteel TeapotMaterial = "stainless-steel"
)

// TeapotMaterials lists every accepted material.
var TeapotMaterials = []TeapotMaterial{
	TeapotMaterialCeramic,
	TeapotMaterialCastIron,
	TeapotMaterialGlass,
	TeapotMaterialPorcelain,
	TeapotMaterialClay,
	TeapotMaterialStainlessSteel,
}

// Valid reports whether m is one of the accepted materials.
func (m TeapotMaterial) Valid() bool {
	return slices.Contains(TeapotMaterials, m)
}

// TeapotStyle is the brewing tradition a teapot belongs to.
type TeapotStyle string

const (
	TeapotStyleKyusu    TeapotStyle = "kyusu"
	TeapotStyleGaiwan   TeapotStyle = "gaiwan"
	TeapotStyleEnglish  TeapotStyle = "english"
	TeapotStyleMoroccan TeapotStyle = "moroccan"
	TeapotStyleTurkish  TeapotStyle = "turkish"
	TeapotStyleYixing   TeapotStyle = "yixing"
)

// TeapotStyles lists every accepted style.
var TeapotStyles = []TeapotStyle{
	TeapotStyleKyusu,
	TeapotStyleGaiwan,
	TeapotStyleEnglish,
	TeapotStyleMoroccan,
	TeapotStyleTurkish,
	TeapotStyleYixing,
}

// Valid reports whether s is one of the accepted styles.
func (s TeapotStyle) Valid() bool {
	return slices.Contains(TeapotStyles, s)
}

// Teapot is a registered teapot.
type Teapot struct {
	ID          string         `json:"id" example:"b5e7f2a0-8f3d-4e6b-9c1a-2d4f6e8a0c1b"`
	Name        string         `json:"name" example:"Morning Kyusu"`
	Material    TeapotMaterial `json:"material" example:"clay"`
	CapacityMl  int            `json:"capacityMl" example:"350"`
	Style       TeapotStyle    `json:"style" example:"kyusu"`
	Description *string        `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// TeapotPage is one page of teapots with pagination metadata.
type TeapotPage struct {
	Data       []Teapot   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// teapotAliases maps internal field names to their wire spellings.
var teapotAliases = map[string]string{
	"capacity_ml": "capacityMl",
}

// CreateTeapotRequest is the POST /teapots body. Style defaults to
// english when omitted.
type CreateTeapotRequest struct {
	Name        *string         `json:"name" example:"Morning Kyusu"`
	Material    *TeapotMaterial `json:"material" example:"clay"`
	CapacityMl  *int            `json:"capacityMl" example:"350"`
	Style       *TeapotStyle    `json:"style" example:"kyusu"`
	Description *string         `json:"description"`

	fields
}

// DecodeCreateTeapotRequest parses and validates a teapot creation body.
// Fields are accepted under either their wire name or their internal
// snake_case spelling; unknown fields are ignored.
func DecodeCreateTeapotRequest(data []byte) (*CreateTeapotRequest, FieldErrors) {
	raw, fe := parseBody(data, teapotAliases)
	if fe != nil {
		return nil, fe
	}

	fe = FieldErrors{}
	req := &CreateTeapotRequest{fields: newFields(raw)}
	req.Name = raw.stringField("name", fe)
	req.Material = teapotMaterialField(raw, "material", fe)
	req.CapacityMl = raw.intField("capacityMl", fe)
	req.Style = teapotStyleField(raw, "style", fe)
	req.Description = raw.stringField("description", fe)

	req.validate(fe)

	if len(fe) > 0 {
		return nil, fe
	}

	return req, nil
}

func (r *CreateTeapotRequest) validate(fe FieldErrors) {
	switch {
	case r.Name == nil:
		fe.add("name", r.requiredMsg("name"))
	case !validLength(*r.Name, 1, 100):
		fe.add("name", lengthMsg(1, 100))
	}

	switch {
	case r.Material == nil:
		fe.add("material", r.requiredMsg("material"))
	case !r.Material.Valid():
		fe.add("material", oneOfMsg(TeapotMaterials))
	}

	switch {
	case r.CapacityMl == nil:
		fe.add("capacityMl", r.requiredMsg("capacityMl"))
	case *r.CapacityMl < 1 || *r.CapacityMl > 5000:
		fe.add("capacityMl", rangeMsg(1, 5000))
	}

	switch {
	case r.Style == nil && !r.has("style"):
		style := TeapotStyleEnglish
		r.Style = &style
	case r.Style == nil:
		fe.add("style", r.requiredMsg("style"))
	case !r.Style.Valid():
		fe.add("style", oneOfMsg(TeapotStyles))
	}

	if r.Description != nil && !validLength(*r.Description, 0, 500) {
		fe.add("description", maxLengthMsg(500))
	}
}

// NewTeapot materializes the teapot described by the request.
func (r *CreateTeapotRequest) NewTeapot(id string, now time.Time) Teapot {
	return Teapot{
		ID:          id,
		Name:        *r.Name,
		Material:    *r.Material,
		CapacityMl:  *r.CapacityMl,
		Style:       *r.Style,
		Description: r.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateTeapotRequest is the PUT /teapots/{id} body. Every non-nullable
// field is required; an omitted description is reset to null.
type UpdateTeapotRequest struct {
	Name        *string         `json:"name" example:"Morning Kyusu"`
	Material    *TeapotMaterial `json:"material" example:"clay"`
	CapacityMl  *int            `json:"capacityMl" example:"350"`
	Style       *TeapotStyle    `json:"style" example:"kyusu"`
	Description *string         `json:"description"`

	fields
}

// DecodeUpdateTeapotRequest parses and validates a full-replacement body.
func DecodeUpdateTeapotRequest(data []byte) (*UpdateTeapotRequest, FieldErrors) {
	raw, fe := parseBody(data, teapotAliases)
	if fe != nil {
		return nil, fe
	}

	fe = FieldErrors{}
	req := &UpdateTeapotRequest{fields: newFields(raw)}
	req.Name = raw.stringField("name", fe)
	req.Material = teapotMaterialField(raw, "material", fe)
	req.CapacityMl = raw.intField("capacityMl", fe)
	req.Style = teapotStyleField(raw, "style", fe)
	req.Description = raw.stringField("description", fe)

	req.validate(fe)

	if len(fe) > 0 {
		return nil, fe
	}

	return req, nil
}

func (r *UpdateTeapotRequest) validate(fe FieldErrors) {
	switch {
	case r.Name == nil:
		fe.add("name", r.requiredMsg("name"))
	case !validLength(*r.Name, 1, 100):
		fe.add("name", lengthMsg(1, 100))
	}

	switch {
	case r.Material == nil:
		fe.add("material", r.requiredMsg("material"))
	case !r.Material.Valid():
		fe.add("material", oneOfMsg(TeapotMaterials))
	}

	switch {
	case r.CapacityMl == nil:
		fe.add("capacityMl", r.requiredMsg("capacityMl"))
	case *r.CapacityMl < 1 || *r.CapacityMl > 5000:
		fe.add("capacityMl", rangeMsg(1, 5000))
	}

	switch {
	case r.Style == nil:
		fe.add("style", r.requiredMsg("style"))
	case !r.Style.Valid():
		fe.add("style", oneOfMsg(TeapotStyles))
	}

	if r.Description != nil && !validLength(*r.Description, 0, 500) {
		fe.add("description", maxLengthMsg(500))
	}
}

// Apply replaces every mutable field of existing and stamps updatedAt.
func (r *UpdateTeapotRequest) Apply(existing Teapot, now time.Time) Teapot {
	out := existing
	out.Name = *r.Name
	out.Material = *r.Material
	out.CapacityMl = *r.CapacityMl
	out.Style = *r.Style
	out.Description = r.Description
	out.UpdatedAt = now

	return out
}

// PatchTeapotRequest is the PATCH /teapots/{id} body. Only keys present
// in the request are applied; description accepts an explicit null.
type PatchTeapotRequest struct {
	Name        *string         `json:"name"`
	Material    *TeapotMaterial `json:"material"`
	CapacityMl  *int            `json:"capacityMl"`
	Style       *TeapotStyle    `json:"style"`
	Description *string         `json:"description"`

	fields
}

// DecodePatchTeapotRequest parses and validates a partial-update body.
func DecodePatchTeapotRequest(data []byte) (*PatchTeapotRequest, FieldErrors) {
	raw, fe := parseBody(data, teapotAliases)
	if fe != nil {
		return nil, fe
	}

	fe = FieldErrors{}
	req := &PatchTeapotRequest{fields: newFields(raw)}
	req.Name = raw.stringField("name", fe)
	req.Material = teapotMaterialField(raw, "material", fe)
	req.CapacityMl = raw.intField("capacityMl", fe)
	req.Style = teapotStyleField(raw, "style", fe)
	req.Description = raw.stringField("description", fe)

	req.validate(fe)

	if len(fe) > 0 {
		return nil, fe
	}

	return req, nil
}

func (r *PatchTeapotRequest) validate(fe FieldErrors) {
	if r.has("name") {
		switch {
		case r.Name == nil:
			fe.add("name", "may not be null")
		case !validLength(*r.Name, 1, 100):
			fe.add("name", lengthMsg(1, 100))
		}
	}

	if r.has("material") {
		switch {
		case r.Material == nil:
			fe.add("material", "may not be null")
		case !r.Material.Valid():
			fe.add("material", oneOfMsg(TeapotMaterials))
		}
	}

	if r.has("capacityMl") {
		switch {
		case r.CapacityMl == nil:
			fe.add("capacityMl", "may not be null")
		case *r.CapacityMl < 1 || *r.CapacityMl > 5000:
			fe.add("capacityMl", rangeMsg(1, 5000))
		}
	}

	if r.has("style") {
		switch {
		case r.Style == nil:
			fe.add("style", "may not be null")
		case !r.Style.Valid():
			fe.add("style", oneOfMsg(TeapotStyles))
		}
	}

	if r.Description != nil && !validLength(*r.Description, 0, 500) {
		fe.add("description", maxLengthMsg(500))
	}
}

// Apply overlays the present fields onto existing and stamps updatedAt.
// Absent fields are left untouched; an explicit null clears description.
func (r *PatchTeapotRequest) Apply(existing Teapot, now time.Time) Teapot {
	out := existing

	if r.Name != nil {
		out.Name = *r.Name
	}

	if r.Material != nil {
		out.Material = *r.Material
	}

	if r.CapacityMl != nil {
		out.CapacityMl = *r.CapacityMl
	}

	if r.Style != nil {
		out.Style = *r.Style
	}

	if r.has("description") {
		out.Description = r.Description
	}

	out.UpdatedAt = now

	return out
}

// TeapotQuery filters and paginates teapot listings.
type TeapotQuery struct {
	Page     int
	Limit    int
	Material *TeapotMaterial
	Style    *TeapotStyle
}

// DecodeTeapotQuery parses and validates teapot list parameters.
func DecodeTeapotQuery(values url.Values) (*TeapotQuery, FieldErrors) {
	fe := FieldErrors{}
	q := &TeapotQuery{Page: 1, Limit: 20}

	parsePagination(values, &q.Page, &q.Limit, fe)

	if s := values.Get("material"); s != "" {
		m := TeapotMaterial(s)
		if !m.Valid() {
			fe.add("material", oneOfMsg(TeapotMaterials))
		} else {
			q.Material = &m
		}
	}

	if s := values.Get("style"); s != "" {
		st := TeapotStyle(s)
		if !st.Valid() {
			fe.add("style", oneOfMsg(TeapotStyles))
		} else {
			q.Style = &st
		}
	}

	if len(fe) > 0 {
		return nil, fe
	}

	return q, nil
}

// teapotMaterialField extracts an optional material enum value.
func teapotMaterialField(raw rawBody, key string, fe FieldErrors) *TeapotMaterial {
	s := raw.stringField(key, fe)
	if s == nil {
		return nil
	}

	m := TeapotMaterial(*s)

	return &m
}

// teapotStyleField extracts an optional style enum value.
func teapotStyleField(raw rawBody, key string, fe FieldErrors) *TeapotStyle {
	s := raw.stringField(key, fe)
	if s == nil {
		return nil
	}

	st := TeapotStyle(*s)

	return &st
}
