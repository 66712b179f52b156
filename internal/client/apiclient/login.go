package apiclient

import (
	"fmt"
	"net/http"
)

// LoginUser is the user record of a login response. Every field is optional
// and present only if it validated.
type LoginUser struct {
	ID            *string `json:"id,omitempty"`
	Email         *string `json:"email,omitempty"`
	EmailVerified *bool   `json:"emailVerified,omitempty"`
	SMSNumber     *string `json:"smsNumber,omitempty"`
	SMSVerified   *bool   `json:"smsVerified,omitempty"`
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
}

func (u *LoginUser) empty() bool {
	return u.ID == nil && u.Email == nil && u.EmailVerified == nil && u.SMSNumber == nil &&
		u.SMSVerified == nil && u.FirstName == nil && u.LastName == nil
}

type LoginResponse struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	ExpiresIn    *float64   `json:"expiresIn,omitempty"`
	User         *LoginUser `json:"user,omitempty"`
}

// FieldIssue explains why an optional field was dropped.
type FieldIssue struct {
	Field  string
	Reason string
}

func (i *FieldIssue) Error() string {
	return fmt.Sprintf("field %q %s", i.Field, i.Reason)
}

// field is the result of validating one optional field: a value or an issue.
type field[T any] struct {
	value T
	issue *FieldIssue
}

func (f field[T]) ok() bool { return f.issue == nil }

// assign stores the value into dst when the field validated.
func (f field[T]) assign(dst **T, issues *[]*FieldIssue) {
	if f.ok() {
		v := f.value
		*dst = &v
		return
	}
	if issues != nil && f.issue.Reason != reasonMissing {
		*issues = append(*issues, f.issue)
	}
}

const reasonMissing = "is missing"

func missing[T any](name string) field[T] {
	return field[T]{issue: &FieldIssue{Field: name, Reason: reasonMissing}}
}

func invalid[T any](name, reason string) field[T] {
	return field[T]{issue: &FieldIssue{Field: name, Reason: reason}}
}

// stringField accepts non-blank strings only.
func stringField(obj map[string]any, name string) field[string] {
	raw, present := obj[name]
	if !present {
		return missing[string](name)
	}
	s, ok := raw.(string)
	if !ok {
		return invalid[string](name, "is not a string")
	}
	if isBlank(s) {
		return invalid[string](name, "is blank")
	}
	return field[string]{value: s}
}

func numberField(obj map[string]any, name string) field[float64] {
	raw, present := obj[name]
	if !present {
		return missing[float64](name)
	}
	switch n := raw.(type) {
	case float64:
		return field[float64]{value: n}
	case int:
		return field[float64]{value: float64(n)}
	case int64:
		return field[float64]{value: float64(n)}
	default:
		return invalid[float64](name, "is not a number")
	}
}

func boolField(obj map[string]any, name string) field[bool] {
	raw, present := obj[name]
	if !present {
		return missing[bool](name)
	}
	b, ok := raw.(bool)
	if !ok {
		return invalid[bool](name, "is not a boolean")
	}
	return field[bool]{value: b}
}

// parseLoginUser keeps each valid field and drops the rest. It returns nil
// when the value is not an object or no field survived.
func parseLoginUser(value any, issues *[]*FieldIssue) *LoginUser {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	user := &LoginUser{}
	stringField(obj, "id").assign(&user.ID, issues)
	stringField(obj, "email").assign(&user.Email, issues)
	boolField(obj, "emailVerified").assign(&user.EmailVerified, issues)
	stringField(obj, "smsNumber").assign(&user.SMSNumber, issues)
	boolField(obj, "smsVerified").assign(&user.SMSVerified, issues)
	stringField(obj, "firstName").assign(&user.FirstName, issues)
	stringField(obj, "lastName").assign(&user.LastName, issues)

	if user.empty() {
		return nil
	}
	return user
}

// NormalizeLoginResponse extracts tokens, expiry and user from a raw login
// payload. The fields may be nested under "data" or sit at the top level.
// Dropped optional fields are reported in issues; they never fail the call.
func NormalizeLoginResponse(payload any) (*LoginResponse, []*FieldIssue, error) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, nil, NewAPIError(http.StatusInternalServerError, "Login response format is not recognized.")
	}

	data := obj
	if nested, ok := obj["data"].(map[string]any); ok {
		data = nested
	}

	access := stringField(data, "accessToken")
	refresh := stringField(data, "refreshToken")
	if !access.ok() || !refresh.ok() {
		return nil, nil, NewAPIError(http.StatusInternalServerError, "Login response does not include auth tokens.")
	}

	var issues []*FieldIssue
	resp := &LoginResponse{AccessToken: access.value, RefreshToken: refresh.value}
	numberField(data, "expiresIn").assign(&resp.ExpiresIn, &issues)

	if rawUser, present := data["user"]; present {
		resp.User = parseLoginUser(rawUser, &issues)
	}
	return resp, issues, nil
}
