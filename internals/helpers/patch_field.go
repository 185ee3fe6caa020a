package helper

import (
	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

/* =========================================================
   PatchField (tri-state): absent | null | value
   ========================================================= */

type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := sonic.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

// ServerFields lets PATCH bodies echo server-managed keys back; the values are ignored.
type ServerFields struct {
	ID        any `json:"id,omitempty"`
	CreatedAt any `json:"createdAt,omitempty"`
	UpdatedAt any `json:"updatedAt,omitempty"`
}

// NormalizePatchText trims and NFC-normalises a present string value.
func NormalizePatchText(f *PatchField[string]) {
	if f.Present && f.Value != nil {
		v := CleanText(*f.Value)
		f.Value = &v
	}
}

// NormalizeOptionalText is NormalizePatchText where blank text means null.
func NormalizeOptionalText(f *PatchField[string]) {
	NormalizePatchText(f)
	if f.Value != nil && *f.Value == "" {
		f.Value = nil
	}
}

/* =========================================================
   Partial validation
   ========================================================= */

// PatchCheck validates only the fields a PATCH actually sent.
type PatchCheck struct {
	v      *validator.Validate
	fields map[string][]string
}

func NewPatchCheck(v *validator.Validate) *PatchCheck {
	return &PatchCheck{v: v, fields: map[string][]string{}}
}

// CheckPatch validates f against tag; null is accepted only for nullable columns.
func CheckPatch[T any](pc *PatchCheck, name string, f PatchField[T], tag string, nullable bool) {
	if !f.Present {
		return
	}
	if f.Value == nil {
		if !nullable {
			pc.fields[name] = append(pc.fields[name], "not_null")
		}
		return
	}
	if tag == "" {
		return
	}
	if err := pc.v.Var(*f.Value, tag); err != nil {
		for _, rule := range rulesOf(err) {
			pc.fields[name] = append(pc.fields[name], rule)
		}
	}
}

// Fail records a custom rule failure.
func (pc *PatchCheck) Fail(name, rule string) {
	pc.fields[name] = append(pc.fields[name], rule)
}

func (pc *PatchCheck) Err() error {
	if len(pc.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: pc.fields}
}

/* =========================================================
   Update maps
   ========================================================= */

// SetPatch copies a present field into the column update map.
func SetPatch[T any](updates map[string]any, column string, f PatchField[T]) {
	if !f.Present {
		return
	}
	if f.Value == nil {
		updates[column] = nil
		return
	}
	updates[column] = *f.Value
}
