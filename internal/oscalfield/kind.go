// Package oscalfield implements the lexical validator: one type per
// field kind named in the document family's schema, each validating its
// textual form on both ingress (parse) and egress (emit).
//
// Ported from roscal_lib/src/validation.rs: the same regular
// expressions and parse rules are used so that values accepted or
// rejected by the original engine are accepted or rejected here.
package oscalfield

import (
	"encoding/json"
	"net/url"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	tokenRE = regexp.MustCompile(`^([\pL_])([\pL\pN.\-_])*$`)
	emailRE = regexp.MustCompile(`^.+@.+$`)
	base64RE = regexp.MustCompile(`^[0-9A-Za-z+/]+={0,2}$`)
	hash224RE = regexp.MustCompile(`^[0-9a-fA-F]{28}$`)
	hash256RE = regexp.MustCompile(`^[0-9a-fA-F]{32}$`)
	hash384RE = regexp.MustCompile(`^[0-9a-fA-F]{48}$`)
	hash512RE = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

	// dateRE mirrors validation.rs's DATE regex: Gregorian leap years
	// (divisible by 4, except centuries not divisible by 400, restricted
	// here - as the original is - to the 1900-2999 span the pattern
	// actually enumerates) with an optional Z/offset suffix.
	dateRE = regexp.MustCompile(`^(((2000|2400|2800|(19|2[0-9](0[48]|[2468][048]|[13579][26])))-02-29)|(((19|2[0-9])[0-9]{2})-02-(0[1-9]|1[0-9]|2[0-8]))|(((19|2[0-9])[0-9]{2})-(0[13578]|10|12)-(0[1-9]|[12][0-9]|3[01]))|(((19|2[0-9])[0-9]{2})-(0[469]|11)-(0[1-9]|[12][0-9]|30)))(Z|[+-][0-9]{2}:[0-9]{2})?$`)
)

// LexicalError reports a value that violates the rule of its declared
// kind.
type LexicalError struct {
	Kind      string
	Offending string
}

func (e *LexicalError) Error() string {
	return "invalid " + e.Kind + " pattern: " + e.Offending
}

func lexErr(kind, offending string) error {
	return errors.WithStack(&LexicalError{Kind: kind, Offending: offending})
}

// Token is a name-like identifier: (letter|_)(letter|digit|[.-_])*.
type Token string

func (t Token) Validate() error {
	if !tokenRE.MatchString(string(t)) {
		return lexErr("token", string(t))
	}
	return nil
}

func (t *Token) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := Token(s)
	if err := v.Validate(); err != nil {
		return err
	}
	*t = v
	return nil
}

func (t Token) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(t))
}

// UUID is an RFC-4122 textual UUID whose declared version is 4 or 5.
type UUID string

func isValidUUID(s string) bool {
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 || u.Version() == 5
}

func (u UUID) Validate() error {
	if !isValidUUID(string(u)) {
		return lexErr("uuid", string(u))
	}
	return nil
}

func (u *UUID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := UUID(s)
	if err := v.Validate(); err != nil {
		return err
	}
	*u = v
	return nil
}

func (u UUID) MarshalJSON() ([]byte, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(u))
}

// URI is an absolute URI: a scheme is mandatory.
type URI string

func isValidURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

func (u URI) Validate() error {
	if !isValidURI(string(u)) {
		return lexErr("uri", string(u))
	}
	return nil
}

func (u *URI) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := URI(s)
	if err := v.Validate(); err != nil {
		return err
	}
	*u = v
	return nil
}

func (u URI) MarshalJSON() ([]byte, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(u))
}

// URIReference is an absolute URI or a relative reference.
type URIReference string

func isValidURIReference(s string) bool {
	if isValidURI(s) {
		return true
	}
	_, err := url.Parse(s)
	return err == nil
}

func (u URIReference) Validate() error {
	if !isValidURIReference(string(u)) {
		return lexErr("uri-reference", string(u))
	}
	return nil
}

func (u *URIReference) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := URIReference(s)
	if err := v.Validate(); err != nil {
		return err
	}
	*u = v
	return nil
}

func (u URIReference) MarshalJSON() ([]byte, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(u))
}

// Email is a string containing an '@'.
type Email string

func (e Email) Validate() error {
	if !emailRE.MatchString(string(e)) {
		return lexErr("email", string(e))
	}
	return nil
}

func (e *Email) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := Email(s)
	if err := v.Validate(); err != nil {
		return err
	}
	*e = v
	return nil
}

func (e Email) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(e))
}

// Date is a Gregorian calendar date with an optional Z/offset suffix.
type Date string

func (d Date) Validate() error {
	if !dateRE.MatchString(string(d)) {
		return lexErr("date", string(d))
	}
	return nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := Date(s)
	if err := v.Validate(); err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(d))
}

// DateTimeTz is an RFC-3339 date-time with a mandatory offset.
type DateTimeTz string

func (d DateTimeTz) Validate() error {
	if _, err := time.Parse(time.RFC3339, string(d)); err != nil {
		return lexErr("datetime-with-timezone", string(d))
	}
	return nil
}

func (d *DateTimeTz) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := DateTimeTz(s)
	if err := v.Validate(); err != nil {
		return err
	}
	*d = v
	return nil
}

func (d DateTimeTz) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(d))
}

// Base64 is a base64-encoded payload: [0-9A-Za-z+/] with 0-2 trailing '='.
type Base64 string

func (b Base64) Validate() error {
	if !base64RE.MatchString(string(b)) {
		return lexErr("base64", string(b))
	}
	return nil
}

func (b *Base64) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return err
	}
	v := Base64(s)
	if err := v.Validate(); err != nil {
		return err
	}
	*b = v
	return nil
}

func (b Base64) MarshalJSON() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(b))
}

// Hash is a 28/32/48/64 hex-digit cryptographic hash value (the widths
// of SHA-3-224/256/384/512 and SHA-256; no algorithm tag is decoded).
type Hash string

func (h Hash) Validate() error {
	s := string(h)
	if hash224RE.MatchString(s) || hash256RE.MatchString(s) || hash384RE.MatchString(s) || hash512RE.MatchString(s) {
		return nil
	}
	return lexErr("hash", s)
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := Hash(s)
	if err := v.Validate(); err != nil {
		return err
	}
	*h = v
	return nil
}

func (h Hash) MarshalJSON() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(h))
}

// PositiveInt is an integer >= 1.
type PositiveInt int64

func (p PositiveInt) Validate() error {
	if p < 1 {
		return lexErr("positive-integer", formatInt(int64(p)))
	}
	return nil
}

func (p *PositiveInt) UnmarshalJSON(b []byte) error {
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	v := PositiveInt(n)
	if err := v.Validate(); err != nil {
		return err
	}
	*p = v
	return nil
}

func (p PositiveInt) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(int64(p))
}

// NonNegativeInt is an integer >= 0.
type NonNegativeInt int64

func (n NonNegativeInt) Validate() error {
	if n < 0 {
		return lexErr("non-negative-integer", formatInt(int64(n)))
	}
	return nil
}

func (n *NonNegativeInt) UnmarshalJSON(b []byte) error {
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	nn := NonNegativeInt(v)
	if err := nn.Validate(); err != nil {
		return err
	}
	*n = nn
	return nil
}

func (n NonNegativeInt) MarshalJSON() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(int64(n))
}

func formatInt(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}

// closedSum validates that a tagged string belongs to a fixed set of
// allowed values, used by every closed-sum enum in the schema (party
// type, position, cardinality, combination method, and so on).
func closedSum(value string, allowed ...string) error {
	return validation.Validate(value, validation.Required, validation.In(toAny(allowed)...))
}

func toAny(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// ClosedSum reports an unrecognized tag for a closed-sum field.
func ClosedSum(field, value string, allowed ...string) error {
	if err := closedSum(value, allowed...); err != nil {
		return errors.Wrapf(&LexicalError{Kind: "closed-sum:" + field, Offending: value}, "unknown %s", field)
	}
	return nil
}

// DecodeClosedSum unmarshals a JSON string into a closed-sum enum type
// T (any defined type whose underlying type is string), validating it
// against allowed on the way in. Every closed-sum type in oscalmodel
// delegates its UnmarshalJSON to this helper so an unrecognized tag is
// rejected at parse time rather than only when later explicitly
// validated.
func DecodeClosedSum[T ~string](b []byte, field string, allowed ...string) (T, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", err
	}
	if err := ClosedSum(field, s, allowed...); err != nil {
		return "", err
	}
	return T(s), nil
}
