// Package payload turns the loose per-type data map of a QR generation
// request into a typed payload spec ready for encoding.
//
// Resolve dispatches on the requested kind, validates required fields, and
// returns one of the sealed Spec variants. Simple variants (Text, URL, Tel,
// SMS, Email) carry a canonical content string; Wifi and MeCard stay
// structured so the encoder can assemble their wire formats itself.
//
// Validation failures are reported with exact field names via
// MissingFieldsError, distinct from ErrUnsupportedKind which signals a
// structurally invalid request.
package payload
