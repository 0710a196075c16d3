package model

import (
	"fmt"
	"math"
)

// Engine-side field names accepted in operator patches. These are the names
// the rest of the system speaks; storage columns are spelled differently and
// reached only through ColumnFor.
const (
	FieldName                = "name"
	FieldTier                = "tier"
	FieldZone                = "zone"
	FieldStage               = "stage"
	FieldCred                = "cred"
	FieldCredType            = "credType"
	FieldRate                = "rate"
	FieldSource              = "source"
	FieldIsBuffer            = "isBuffer"
	FieldPhone               = "phone"
	FieldReel                = "reel"
	FieldRefs                = "refs"
	FieldLOA                 = "loa"
	FieldW9                  = "w9"
	FieldReliability         = "reliability"
	FieldWorkedWithMemeHouse = "workedWithMemeHouse"
	FieldLateToScreen        = "lateToScreen"
	FieldRateInstability     = "rateInstability"
	FieldGear                = "gear"
	FieldPerfScore           = "perfScore"
	FieldRehireEligible      = "rehireEligible"
	FieldPostNotes           = "postNotes"
	FieldNotes               = "notes"
)

// RiskFields are the classifier inputs: a patch touching any of them forces
// a risk recomputation on the merged record.
var RiskFields = []string{
	FieldReliability,
	FieldWorkedWithMemeHouse,
	FieldLateToScreen,
	FieldRateInstability,
	FieldRefs,
	FieldCred,
}

// columnNames is the fixed renaming table between engine field names and
// stored column names. Reads translate the other direction when repository
// rows are scanned into Operator structs.
var columnNames = map[string]string{
	FieldName:                "full_name",
	FieldTier:                "tier",
	FieldZone:                "zone",
	FieldStage:               "hire_stage",
	FieldCred:                "cred_status",
	FieldCredType:            "cred_type",
	FieldRate:                "day_rate",
	FieldSource:              "source",
	FieldIsBuffer:            "is_buffer",
	FieldPhone:               "phone",
	FieldReel:                "reel",
	FieldRefs:                "refs",
	FieldLOA:                 "loa",
	FieldW9:                  "w9",
	FieldReliability:         "reliability",
	FieldWorkedWithMemeHouse: "worked_with_memehouse",
	FieldLateToScreen:        "late_to_screen",
	FieldRateInstability:     "rate_instability",
	FieldGear:                "gear",
	FieldPerfScore:           "perf_score",
	FieldRehireEligible:      "rehire_eligible",
	FieldPostNotes:           "post_notes",
	FieldNotes:               "notes",
}

// ColumnFor translates an engine field name to its stored column name.
func ColumnFor(field string) (string, bool) {
	col, ok := columnNames[field]
	return col, ok
}

// Patch is a partial operator update keyed by engine field names, as decoded
// from a JSON request body.
type Patch map[string]any

// Touches reports whether the patch contains any of the given fields.
func (p Patch) Touches(fields ...string) bool {
	for _, f := range fields {
		if _, ok := p[f]; ok {
			return true
		}
	}
	return false
}

// Fields returns the patched field names in no particular order.
func (p Patch) Fields() []string {
	out := make([]string, 0, len(p))
	for f := range p {
		out = append(out, f)
	}
	return out
}

// PatchError is a validation rejection for a single patch field. It is a
// structured failure returned to the caller, never a crash.
type PatchError struct {
	Field  string
	Reason string
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// ApplyTo merges the patch onto op, validating every value against the
// closed enumerations. On the first invalid field it returns a *PatchError
// and op is left unmodified only for fields after the failure point, so
// callers should merge onto a scratch copy and commit on success.
func (p Patch) ApplyTo(op *Operator) error {
	for field, raw := range p {
		if err := applyField(op, field, raw); err != nil {
			return err
		}
	}
	return nil
}

func applyField(op *Operator, field string, raw any) error {
	switch field {
	case FieldName:
		return setString(&op.Name, field, raw)
	case FieldTier:
		s, err := asString(field, raw)
		if err != nil {
			return err
		}
		if !ValidTier(s) {
			return &PatchError{Field: field, Reason: "unknown tier"}
		}
		op.Tier = s
	case FieldZone:
		s, err := asString(field, raw)
		if err != nil {
			return err
		}
		if !ValidZone(s) {
			return &PatchError{Field: field, Reason: "unknown zone"}
		}
		op.Zone = s
	case FieldStage:
		s, err := asString(field, raw)
		if err != nil {
			return err
		}
		if !ValidStage(s) {
			return &PatchError{Field: field, Reason: "unknown hire stage"}
		}
		op.Stage = s
	case FieldCred:
		s, err := asString(field, raw)
		if err != nil {
			return err
		}
		if !ValidCredState(s) {
			return &PatchError{Field: field, Reason: "unknown credential state"}
		}
		op.Cred = s
	case FieldCredType:
		s, err := asString(field, raw)
		if err != nil {
			return err
		}
		if !ValidCredType(s) {
			return &PatchError{Field: field, Reason: "unknown credential type"}
		}
		op.CredType = s
	case FieldRate:
		n, err := asInt(field, raw)
		if err != nil {
			return err
		}
		if min, max, ok := TierRateBand(op.Tier); ok && (n < min || n > max) {
			return &PatchError{Field: field, Reason: fmt.Sprintf("rate %d outside %s band %d-%d", n, op.Tier, min, max)}
		}
		op.Rate = n
	case FieldSource:
		return setString(&op.Source, field, raw)
	case FieldIsBuffer:
		return setBool(&op.IsBuffer, field, raw)
	case FieldPhone:
		return setString(&op.Phone, field, raw)
	case FieldReel:
		return setBool(&op.Reel, field, raw)
	case FieldRefs:
		return setBool(&op.Refs, field, raw)
	case FieldLOA:
		return setBool(&op.LOA, field, raw)
	case FieldW9:
		return setBool(&op.W9, field, raw)
	case FieldReliability:
		n, err := asInt(field, raw)
		if err != nil {
			return err
		}
		if n < 1 || n > 5 {
			return &PatchError{Field: field, Reason: "reliability must be 1-5"}
		}
		op.Reliability = n
	case FieldWorkedWithMemeHouse:
		return setBool(&op.WorkedWithMemeHouse, field, raw)
	case FieldLateToScreen:
		return setBool(&op.LateToScreen, field, raw)
	case FieldRateInstability:
		return setBool(&op.RateInstability, field, raw)
	case FieldGear:
		tags, err := asStrings(field, raw)
		if err != nil {
			return err
		}
		for _, g := range tags {
			if !ValidGearTag(g) {
				return &PatchError{Field: field, Reason: fmt.Sprintf("unknown gear tag %q", g)}
			}
		}
		op.Gear = tags
	case FieldPerfScore:
		if raw == nil {
			op.PerfScore = nil
			return nil
		}
		n, err := asInt(field, raw)
		if err != nil {
			return err
		}
		if n < 1 || n > 5 {
			return &PatchError{Field: field, Reason: "perfScore must be 1-5"}
		}
		op.PerfScore = &n
	case FieldRehireEligible:
		if raw == nil {
			op.RehireEligible = nil
			return nil
		}
		b, err := asBool(field, raw)
		if err != nil {
			return err
		}
		op.RehireEligible = &b
	case FieldPostNotes:
		return setString(&op.PostNotes, field, raw)
	case FieldNotes:
		return setString(&op.Notes, field, raw)
	default:
		return &PatchError{Field: field, Reason: "unknown field"}
	}
	return nil
}

// JSON decoding yields float64 for all numbers; coerce carefully so 4.0 is
// accepted but 4.2 is not.
func asInt(field string, raw any) (int, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, &PatchError{Field: field, Reason: "expected an integer"}
		}
		return int(v), nil
	case int:
		return v, nil
	}
	return 0, &PatchError{Field: field, Reason: "expected a number"}
}

func asBool(field string, raw any) (bool, error) {
	b, ok := raw.(bool)
	if !ok {
		return false, &PatchError{Field: field, Reason: "expected a boolean"}
	}
	return b, nil
}

func asString(field string, raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", &PatchError{Field: field, Reason: "expected a string"}
	}
	return s, nil
}

func asStrings(field string, raw any) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &PatchError{Field: field, Reason: "expected an array of strings"}
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, &PatchError{Field: field, Reason: "expected an array of strings"}
}

func setString(dst *string, field string, raw any) error {
	s, err := asString(field, raw)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

func setBool(dst *bool, field string, raw any) error {
	b, err := asBool(field, raw)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
