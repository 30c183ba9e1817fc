// Package valuecodec provides value serializers for the session codec.
//
// All codecs implement the clientsession.ValueSerializer interface and
// base64url-wrap their output, guaranteeing the serialized bytes are safe to
// embed in the '&'/'='-delimited session payload.
//
// Three codecs are available:
//
//   - String: text values only, smallest output
//   - JSON: arbitrary JSON-marshalable values; numbers deserialize as float64
//   - Gob: preserves concrete Go types; register them with Register first
//
// Pick one codec per deployment: the deserializing side must use the same
// codec that serialized the cookie.
package valuecodec
