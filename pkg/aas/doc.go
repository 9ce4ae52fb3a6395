// Package aas provides the minimal Asset Administration Shell (AAS)
// data model and its canonical JSON serialization.
//
// An AAS document describes an industrial asset's identity and a flat,
// ordered list of named nameplate properties:
//
//	{
//	  "id": "MOTOR-12345",
//	  "asset_type": "Siemens 1LE1",
//	  "nameplate": [
//	    {"id_short": "Voltage", "value": "400", "unit": "V"},
//	    {"id_short": "Power", "value": "7.5", "unit": "kW"}
//	  ]
//	}
//
// # Decoding Contract
//
// Decoding is strict and structural: the text must be valid JSON, and the
// id, asset_type, and nameplate fields must be present with the correct
// JSON types. The unit field on a nameplate property is the only optional
// field. Unknown extra fields are ignored for forward compatibility.
// Values are carried opaquely as text; no numeric typing or schema
// validation is applied.
//
// # Encoding Contract
//
// [Encode] produces a pretty-printed, deterministic rendering with stable
// field order. Encoding never fails from the caller's perspective.
//
// # File Formats
//
// The on-disk tooling (aas-tool) additionally accepts YAML documents with
// the same structure. [ParseFile] auto-detects the format. The core
// decode/encode/validate contract itself is JSON only.
package aas
