package signer

import (
	"strconv"

	rtctokenbuilder "github.com/AgoraIO/Tools/DynamicKey/AgoraDynamicKey/go/src/rtctokenbuilder"
	rtmtokenbuilder "github.com/AgoraIO/Tools/DynamicKey/AgoraDynamicKey/go/src/rtmtokenbuilder"

	"github.com/weixuan2008/tele-sales-token-server/internal/errors"
	"github.com/weixuan2008/tele-sales-token-server/tokens"
)

const (
	ErrSignFailed errors.Code = "sign failed"
)

// agoraSigner adapts the Agora DynamicKey builder packages. The builders own
// the versioned binary token format; this adapter only maps domain values
// onto their entry points.
type agoraSigner struct {
	creds tokens.Credentials
}

func New(creds tokens.Credentials) tokens.Signer {
	return &agoraSigner{creds: creds}
}

func (s *agoraSigner) SignMediaToken(channel, uid string, mode tokens.IdentityMode, role tokens.Role, expireAt uint32) (string, error) {
	if mode == tokens.IdentityByUID {
		n, err := strconv.ParseUint(uid, 10, 32)
		if err != nil {
			// normalization guarantees a numeric uid in this mode
			return "", errors.Wrapf(ErrSignFailed, err, "uid %q is not numeric", uid)
		}
		token, err := rtctokenbuilder.BuildTokenWithUID(
			s.creds.AppID, s.creds.AppCertificate, channel, uint32(n), rtcRole(role), expireAt)
		return token, errors.Wrap(ErrSignFailed, err, "build rtc token with uid")
	}

	token, err := rtctokenbuilder.BuildTokenWithUserAccount(
		s.creds.AppID, s.creds.AppCertificate, channel, uid, rtcRole(role), expireAt)
	return token, errors.Wrap(ErrSignFailed, err, "build rtc token with account")
}

func (s *agoraSigner) SignMessagingToken(uid string, role tokens.Role, expireAt uint32) (string, error) {
	// Standalone messaging requests arrive with RoleMessagingUser, which is
	// the builder's RTM user role. Combined requests pass their media role
	// through so both credentials carry the same privilege value.
	token, err := rtmtokenbuilder.BuildToken(
		s.creds.AppID, s.creds.AppCertificate, uid, rtmtokenbuilder.Role(role), expireAt)
	return token, errors.Wrap(ErrSignFailed, err, "build rtm token")
}

func rtcRole(role tokens.Role) rtctokenbuilder.Role {
	if role == tokens.RoleSubscriber {
		return rtctokenbuilder.RoleSubscriber
	}
	return rtctokenbuilder.RolePublisher
}
