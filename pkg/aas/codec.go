package aas

import (
	"encoding/json"
	"fmt"
)

// DecodeError reports why a document failed structural decoding.
type DecodeError struct {
	// Cause is a human-readable description of the failure.
	Cause string
}

func (e *DecodeError) Error() string {
	return e.Cause
}

// rawShell mirrors Shell with pointer fields so required-field presence
// can be checked after unmarshalling.
type rawShell struct {
	ID        *string       `json:"id" yaml:"id"`
	AssetType *string       `json:"asset_type" yaml:"asset_type"`
	Nameplate *[]rawElement `json:"nameplate" yaml:"nameplate"`
}

type rawElement struct {
	IDShort *string `json:"id_short" yaml:"id_short"`
	Value   *string `json:"value" yaml:"value"`
	Unit    *string `json:"unit" yaml:"unit"`
}

// build validates required-field presence and assembles the Shell.
func (r *rawShell) build() (*Shell, error) {
	if r.ID == nil {
		return nil, &DecodeError{Cause: "missing required field: id"}
	}
	if r.AssetType == nil {
		return nil, &DecodeError{Cause: "missing required field: asset_type"}
	}
	if r.Nameplate == nil {
		return nil, &DecodeError{Cause: "missing required field: nameplate"}
	}

	shell := &Shell{
		ID:        *r.ID,
		AssetType: *r.AssetType,
		Nameplate: make([]SubmodelElement, 0, len(*r.Nameplate)),
	}

	for i, el := range *r.Nameplate {
		if el.IDShort == nil {
			return nil, &DecodeError{Cause: fmt.Sprintf("nameplate[%d]: missing required field: id_short", i)}
		}
		if el.Value == nil {
			return nil, &DecodeError{Cause: fmt.Sprintf("nameplate[%d]: missing required field: value", i)}
		}
		shell.Nameplate = append(shell.Nameplate, SubmodelElement{
			IDShort: *el.IDShort,
			Value:   *el.Value,
			Unit:    el.Unit,
		})
	}

	return shell, nil
}

// Decode parses data as a canonical AAS JSON document.
// It fails with a *DecodeError when the data is not valid JSON or does
// not structurally match the Shell shape (missing required field, wrong
// JSON type). Unknown extra fields are ignored.
func Decode(data []byte) (*Shell, error) {
	var raw rawShell
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Cause: err.Error()}
	}
	return raw.build()
}

// DecodeString parses a string as a canonical AAS JSON document.
func DecodeString(s string) (*Shell, error) {
	return Decode([]byte(s))
}

// Encode renders the shell as pretty-printed JSON with stable field order
// (id, asset_type, nameplate; id_short, value, unit within each property).
// Encoding never fails: if an internal marshal error is somehow produced,
// the literal empty object {} is returned instead.
func Encode(s *Shell) []byte {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return []byte("{}")
	}
	return data
}

// EncodeString renders the shell as pretty-printed JSON text.
func EncodeString(s *Shell) string {
	return string(Encode(s))
}

// IsValid reports whether data would decode successfully.
// It is side-effect-free and does not retain the decoded value.
func IsValid(data []byte) bool {
	_, err := Decode(data)
	return err == nil
}

// IsValidString reports whether the string would decode successfully.
func IsValidString(s string) bool {
	return IsValid([]byte(s))
}
