package tokens

//go:generate mockgen -source=types.go -destination=mocks/tokens.go -package=mocks

// DefaultTTLSeconds is the privilege window applied when the caller does not
// ask for one.
const DefaultTTLSeconds uint32 = 3600

// Role is the media privilege carried by an RTC token.
type Role int

const (
	// may send and receive media
	RolePublisher Role = iota + 1
	// may only receive media
	RoleSubscriber
)

// RoleMessagingUser is the fixed role carried by standalone messaging
// tokens. It shares wire value 1 with the RTM builder's user role.
const RoleMessagingUser = RolePublisher

// textual role tokens accepted on the wire
const (
	RoleTokenPublisher = "publisher"
	RoleTokenAudience  = "audience"
)

// IdentityMode selects which signer entry point identifies the subject:
// an opaque account string or a numeric id.
type IdentityMode int

const (
	IdentityByAccount IdentityMode = iota + 1
	IdentityByUID
)

// textual token type values accepted on the wire
const (
	TokenTypeUserAccount = "userAccount"
	TokenTypeUID         = "uid"
)

// TokenRequest is a validated token request. It is immutable once built by
// one of the Normalize functions and lives only for the handling of a single
// HTTP request.
type TokenRequest struct {
	ChannelName  string
	UID          string
	Role         Role
	IdentityMode IdentityMode
	TTLSeconds   uint32
}

// TokenPair is the combined endpoint result; both tokens encode the same
// expiry instant.
type TokenPair struct {
	RTCToken string `json:"rtcToken"`
	RTMToken string `json:"rtmToken"`
}

// Credentials is the application identity shared by every request. It is
// loaded once at startup and never mutated afterwards.
type Credentials struct {
	AppID          string
	AppCertificate string
}

func (c Credentials) Validate() error {
	if c.AppID == "" || c.AppCertificate == "" {
		return ErrMissingCredentials
	}
	return nil
}

// Signer produces opaque signed credential strings. The binary token format
// is owned by the external builder packages; implementations must be
// deterministic and safe for concurrent use.
type Signer interface {
	SignMediaToken(channel, uid string, mode IdentityMode, role Role, expireAt uint32) (string, error)
	SignMessagingToken(uid string, role Role, expireAt uint32) (string, error)
}

// Issuer maps a validated request to signer calls, one method per endpoint
// family so each family's asymmetry stays visible in one place.
type Issuer interface {
	MediaToken(req *TokenRequest) (string, error)
	MessagingToken(req *TokenRequest) (string, error)
	CombinedTokens(req *TokenRequest) (*TokenPair, error)
}
