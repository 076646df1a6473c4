package tokens

import (
	"strconv"

	"github.com/weixuan2008/tele-sales-token-server/internal/validation"
)

// RawParams carries the raw path/query strings handed over by the transport
// layer, before any validation.
type RawParams struct {
	Channel   string
	Role      string
	TokenType string
	UID       string
	Expiry    string
}

// NormalizeMedia validates params for the media-token endpoint. Checks run
// in a fixed order and the first failure wins.
func NormalizeMedia(p RawParams) (*TokenRequest, error) {
	if p.Channel == "" {
		return nil, ErrChannelRequired
	}
	if p.UID == "" {
		return nil, ErrUIDRequired
	}
	role, ok := parseRole(p.Role)
	if !ok {
		return nil, ErrRoleIncorrect
	}
	mode, ok := parseIdentityMode(p.TokenType)
	if !ok {
		return nil, ErrTokenTypeInvalid
	}
	if mode == IdentityByUID && !isNumericUID(p.UID) {
		return nil, ErrUIDInvalid
	}
	ttl, err := parseTTL(p.Expiry)
	if err != nil {
		return nil, err
	}

	return &TokenRequest{
		ChannelName:  p.Channel,
		UID:          p.UID,
		Role:         role,
		IdentityMode: mode,
		TTLSeconds:   ttl,
	}, nil
}

// NormalizeMessaging validates params for the messaging-token endpoint.
// Channel, role and token type are not part of this endpoint family.
func NormalizeMessaging(p RawParams) (*TokenRequest, error) {
	if p.UID == "" {
		return nil, ErrUIDRequired
	}
	ttl, err := parseTTL(p.Expiry)
	if err != nil {
		return nil, err
	}

	return &TokenRequest{
		UID:        p.UID,
		TTLSeconds: ttl,
	}, nil
}

// NormalizeCombined validates params for the combined endpoint. The token
// type segment is accepted but ignored: combined requests always run in
// numeric-id mode, so the uid must be numeric.
func NormalizeCombined(p RawParams) (*TokenRequest, error) {
	if p.Channel == "" {
		return nil, ErrChannelRequired
	}
	if p.UID == "" {
		return nil, ErrUIDRequired
	}
	role, ok := parseRole(p.Role)
	if !ok {
		return nil, ErrRoleIncorrect
	}
	if !isNumericUID(p.UID) {
		return nil, ErrUIDInvalid
	}
	ttl, err := parseTTL(p.Expiry)
	if err != nil {
		return nil, err
	}

	return &TokenRequest{
		ChannelName:  p.Channel,
		UID:          p.UID,
		Role:         role,
		IdentityMode: IdentityByUID,
		TTLSeconds:   ttl,
	}, nil
}

func parseRole(s string) (Role, bool) {
	if !validation.Var(s, "tokenrole") {
		return 0, false
	}
	if s == RoleTokenAudience {
		return RoleSubscriber, true
	}
	return RolePublisher, true
}

func parseIdentityMode(s string) (IdentityMode, bool) {
	if !validation.Var(s, "tokentype") {
		return 0, false
	}
	if s == TokenTypeUID {
		return IdentityByUID, true
	}
	return IdentityByAccount, true
}

func isNumericUID(s string) bool {
	_, err := strconv.ParseUint(s, 10, 32)
	return err == nil
}

func parseTTL(s string) (uint32, error) {
	if s == "" {
		return DefaultTTLSeconds, nil
	}
	ttl, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ErrExpiryInvalid
	}
	return uint32(ttl), nil
}
