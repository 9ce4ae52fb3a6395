// Package twin provides the stateful digital-twin wrapper around an AAS
// shell document.
//
// A Twin combines the static asset record with live simulation counters.
// It is created by decoding an AAS JSON document and then queried or
// advanced by the host:
//
//	t, err := twin.New(jsonText)
//	if err != nil {
//	    // construction fails atomically; no partial twin exists
//	}
//	t.Property("Voltage") // "400 V"
//	t.Advance()           // "Live RPM: 11.98 (tick: 1)"
//
// All operations are synchronous and non-blocking. A Twin is not safe for
// concurrent use; it follows a single-owner model and hosts that share one
// must serialize access themselves.
package twin
