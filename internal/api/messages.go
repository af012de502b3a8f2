package api

import (
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

type RegisterUserRequest struct {
	Username string
	Salt     []byte
	Verifier []byte
}

func (m *RegisterUserRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Username)
	b = appendBytes(b, 2, m.Salt)
	b = appendBytes(b, 3, m.Verifier)
	return b
}

func (m *RegisterUserRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.Username, n, err = consumeString(typ, b)
	case 2:
		m.Salt, n, err = consumeBytes(typ, b)
	case 3:
		m.Verifier, n, err = consumeBytes(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type RegisterUserResponse struct {
	UserID string
}

func (m *RegisterUserResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.UserID)
	return b
}

func (m *RegisterUserResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.UserID, n, err = consumeString(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type GetSaltRequest struct {
	Username string
}

func (m *GetSaltRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Username)
	return b
}

func (m *GetSaltRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.Username, n, err = consumeString(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type GetSaltResponse struct {
	Salt []byte
}

func (m *GetSaltResponse) appendWire(b []byte) []byte {
	b = appendBytes(b, 1, m.Salt)
	return b
}

func (m *GetSaltResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.Salt, n, err = consumeBytes(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type LoginRequest struct {
	Username          string
	VerifierCandidate []byte
}

func (m *LoginRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Username)
	b = appendBytes(b, 2, m.VerifierCandidate)
	return b
}

func (m *LoginRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.Username, n, err = consumeString(typ, b)
	case 2:
		m.VerifierCandidate, n, err = consumeBytes(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type LoginResponse struct {
	AccessToken  string
	RefreshToken string
}

func (m *LoginResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.AccessToken)
	b = appendString(b, 2, m.RefreshToken)
	return b
}

func (m *LoginResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.AccessToken, n, err = consumeString(typ, b)
	case 2:
		m.RefreshToken, n, err = consumeString(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type RefreshTokenRequest struct {
	RefreshToken string
}

func (m *RefreshTokenRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.RefreshToken)
	return b
}

func (m *RefreshTokenRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.RefreshToken, n, err = consumeString(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type RefreshTokenResponse struct {
	AccessToken  string
	RefreshToken string
}

func (m *RefreshTokenResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.AccessToken)
	b = appendString(b, 2, m.RefreshToken)
	return b
}

func (m *RefreshTokenResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.AccessToken, n, err = consumeString(typ, b)
	case 2:
		m.RefreshToken, n, err = consumeString(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type PingRequest struct{}

func (m *PingRequest) appendWire(b []byte) []byte { return b }

func (m *PingRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return skipField(num, typ, b)
}

type PingResponse struct {
	Status string
}

func (m *PingResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Status)
	return b
}

func (m *PingResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.Status, n, err = consumeString(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

// Profile holds per-user settings. Timezone is an IANA name.
type Profile struct {
	Timezone          string
	EmailReminders    bool
	PushNotifications bool
}

func (m *Profile) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Timezone)
	b = appendBool(b, 2, m.EmailReminders)
	b = appendBool(b, 3, m.PushNotifications)
	return b
}

func (m *Profile) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.Timezone, n, err = consumeString(typ, b)
	case 2:
		m.EmailReminders, n, err = consumeBool(typ, b)
	case 3:
		m.PushNotifications, n, err = consumeBool(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type GetProfileRequest struct{}

func (m *GetProfileRequest) appendWire(b []byte) []byte { return b }

func (m *GetProfileRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return skipField(num, typ, b)
}

type GetProfileResponse struct {
	Profile *Profile
}

func (m *GetProfileResponse) appendWire(b []byte) []byte {
	if m.Profile != nil {
		b = appendMessage(b, 1, m.Profile)
	}
	return b
}

func (m *GetProfileResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		if m.Profile == nil {
			m.Profile = &Profile{}
		}
		n, err = consumeMessage(typ, b, m.Profile)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type UpdateProfileRequest struct {
	Profile *Profile
}

func (m *UpdateProfileRequest) appendWire(b []byte) []byte {
	if m.Profile != nil {
		b = appendMessage(b, 1, m.Profile)
	}
	return b
}

func (m *UpdateProfileRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		if m.Profile == nil {
			m.Profile = &Profile{}
		}
		n, err = consumeMessage(typ, b, m.Profile)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type UpdateProfileResponse struct {
	Profile *Profile
}

func (m *UpdateProfileResponse) appendWire(b []byte) []byte {
	if m.Profile != nil {
		b = appendMessage(b, 1, m.Profile)
	}
	return b
}

func (m *UpdateProfileResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		if m.Profile == nil {
			m.Profile = &Profile{}
		}
		n, err = consumeMessage(typ, b, m.Profile)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

// Reflection is a stored week. EncryptedContent is an envelope the server
// never decrypts; it is empty in listings that do not ask for content.
// WeekStartDate is YYYY-MM-DD. LockedAt is nil while the week is open.
type Reflection struct {
	ID               string
	WeekStartDate    string
	EncryptedContent string
	IsCompleted      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	LockedAt         *time.Time
}

func (m *Reflection) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	b = appendString(b, 2, m.WeekStartDate)
	b = appendString(b, 3, m.EncryptedContent)
	b = appendBool(b, 4, m.IsCompleted)
	b = appendTime(b, 5, m.CreatedAt)
	b = appendTime(b, 6, m.UpdatedAt)
	if m.LockedAt != nil {
		b = appendTime(b, 7, *m.LockedAt)
	}
	return b
}

func (m *Reflection) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.ID, n, err = consumeString(typ, b)
	case 2:
		m.WeekStartDate, n, err = consumeString(typ, b)
	case 3:
		m.EncryptedContent, n, err = consumeString(typ, b)
	case 4:
		m.IsCompleted, n, err = consumeBool(typ, b)
	case 5:
		m.CreatedAt, n, err = consumeTime(typ, b)
	case 6:
		m.UpdatedAt, n, err = consumeTime(typ, b)
	case 7:
		var t time.Time
		if t, n, err = consumeTime(typ, b); err == nil {
			m.LockedAt = &t
		}
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type SaveReflectionRequest struct {
	WeekStartDate    string
	EncryptedContent string
	IsCompleted      bool
}

func (m *SaveReflectionRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.WeekStartDate)
	b = appendString(b, 2, m.EncryptedContent)
	b = appendBool(b, 3, m.IsCompleted)
	return b
}

func (m *SaveReflectionRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.WeekStartDate, n, err = consumeString(typ, b)
	case 2:
		m.EncryptedContent, n, err = consumeString(typ, b)
	case 3:
		m.IsCompleted, n, err = consumeBool(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type SaveReflectionResponse struct {
	Reflection *Reflection
}

func (m *SaveReflectionResponse) appendWire(b []byte) []byte {
	if m.Reflection != nil {
		b = appendMessage(b, 1, m.Reflection)
	}
	return b
}

func (m *SaveReflectionResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		if m.Reflection == nil {
			m.Reflection = &Reflection{}
		}
		n, err = consumeMessage(typ, b, m.Reflection)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type GetReflectionRequest struct {
	WeekStartDate string
}

func (m *GetReflectionRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.WeekStartDate)
	return b
}

func (m *GetReflectionRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.WeekStartDate, n, err = consumeString(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type GetReflectionResponse struct {
	Reflection *Reflection
}

func (m *GetReflectionResponse) appendWire(b []byte) []byte {
	if m.Reflection != nil {
		b = appendMessage(b, 1, m.Reflection)
	}
	return b
}

func (m *GetReflectionResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		if m.Reflection == nil {
			m.Reflection = &Reflection{}
		}
		n, err = consumeMessage(typ, b, m.Reflection)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type ListReflectionsRequest struct {
	IncludeContent bool
}

func (m *ListReflectionsRequest) appendWire(b []byte) []byte {
	b = appendBool(b, 1, m.IncludeContent)
	return b
}

func (m *ListReflectionsRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.IncludeContent, n, err = consumeBool(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type ListReflectionsResponse struct {
	Reflections []*Reflection
}

func (m *ListReflectionsResponse) appendWire(b []byte) []byte {
	for _, r := range m.Reflections {
		if r == nil {
			r = &Reflection{}
		}
		b = appendMessage(b, 1, r)
	}
	return b
}

func (m *ListReflectionsResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		r := &Reflection{}
		if n, err = consumeMessage(typ, b, r); err == nil {
			m.Reflections = append(m.Reflections, r)
		}
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type DeleteReflectionRequest struct {
	ID string
}

func (m *DeleteReflectionRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	return b
}

func (m *DeleteReflectionRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.ID, n, err = consumeString(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type DeleteReflectionResponse struct{}

func (m *DeleteReflectionResponse) appendWire(b []byte) []byte { return b }

func (m *DeleteReflectionResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return skipField(num, typ, b)
}

type RestoreReflectionRequest struct {
	ID string
}

func (m *RestoreReflectionRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	return b
}

func (m *RestoreReflectionRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.ID, n, err = consumeString(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type RestoreReflectionResponse struct{}

func (m *RestoreReflectionResponse) appendWire(b []byte) []byte { return b }

func (m *RestoreReflectionResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return skipField(num, typ, b)
}

type GetArchiveUploadURLRequest struct{}

func (m *GetArchiveUploadURLRequest) appendWire(b []byte) []byte { return b }

func (m *GetArchiveUploadURLRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return skipField(num, typ, b)
}

type GetArchiveUploadURLResponse struct {
	Key string
	URL string
}

func (m *GetArchiveUploadURLResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Key)
	b = appendString(b, 2, m.URL)
	return b
}

func (m *GetArchiveUploadURLResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.Key, n, err = consumeString(typ, b)
	case 2:
		m.URL, n, err = consumeString(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type GetArchiveDownloadURLRequest struct {
	Key string
}

func (m *GetArchiveDownloadURLRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Key)
	return b
}

func (m *GetArchiveDownloadURLRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.Key, n, err = consumeString(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}

type GetArchiveDownloadURLResponse struct {
	URL string
}

func (m *GetArchiveDownloadURLResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.URL)
	return b
}

func (m *GetArchiveDownloadURLResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var (
		n   int
		err error
	)
	switch num {
	case 1:
		m.URL, n, err = consumeString(typ, b)
	default:
		n, err = skipField(num, typ, b)
	}
	return n, err
}
