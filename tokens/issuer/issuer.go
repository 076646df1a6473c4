package issuer

import (
	"github.com/jonboulle/clockwork"

	"github.com/weixuan2008/tele-sales-token-server/internal/log"
	"github.com/weixuan2008/tele-sales-token-server/tokens"
)

// Issuer turns validated requests into signer calls. It owns no state beyond
// the signer and a clock, so it is safe for arbitrary concurrent use.
type Issuer struct {
	signer tokens.Signer
	clock  clockwork.Clock
	logger *log.Logger
}

var _ tokens.Issuer = (*Issuer)(nil)

func New(signer tokens.Signer, logger *log.Logger) *Issuer {
	return newWithClock(signer, logger, clockwork.NewRealClock())
}

func newWithClock(signer tokens.Signer, logger *log.Logger, clock clockwork.Clock) *Issuer {
	if signer == nil {
		panic("signer is required")
	}
	if logger == nil {
		panic("logger is required")
	}

	return &Issuer{
		signer: signer,
		clock:  clock,
		logger: logger,
	}
}

func (i *Issuer) expireAt(ttlSeconds uint32) uint32 {
	return uint32(i.clock.Now().Unix()) + ttlSeconds
}

// MediaToken issues one RTC token, picking the signer entry point by the
// request's identity mode.
func (i *Issuer) MediaToken(req *tokens.TokenRequest) (string, error) {
	expireAt := i.expireAt(req.TTLSeconds)

	i.logger.Debug("issuing media token",
		log.String("channel", req.ChannelName),
		log.String("uid", req.UID),
		log.Uint32("expireAt", expireAt))

	return i.signer.SignMediaToken(req.ChannelName, req.UID, req.IdentityMode, req.Role, expireAt)
}

// MessagingToken issues one RTM token. The request's channel, role and
// identity mode are not consulted; standalone messaging tokens always carry
// the fixed user role.
func (i *Issuer) MessagingToken(req *tokens.TokenRequest) (string, error) {
	expireAt := i.expireAt(req.TTLSeconds)

	i.logger.Debug("issuing messaging token",
		log.String("uid", req.UID),
		log.Uint32("expireAt", expireAt))

	return i.signer.SignMessagingToken(req.UID, tokens.RoleMessagingUser, expireAt)
}

// CombinedTokens issues an RTC and an RTM token from one clock snapshot so
// both expire in lockstep. The media signer always runs in numeric-id mode,
// and the messaging token reuses the media role.
func (i *Issuer) CombinedTokens(req *tokens.TokenRequest) (*tokens.TokenPair, error) {
	expireAt := i.expireAt(req.TTLSeconds)

	i.logger.Debug("issuing combined tokens",
		log.String("channel", req.ChannelName),
		log.String("uid", req.UID),
		log.Uint32("expireAt", expireAt))

	rtcToken, err := i.signer.SignMediaToken(req.ChannelName, req.UID, tokens.IdentityByUID, req.Role, expireAt)
	if err != nil {
		return nil, err
	}
	rtmToken, err := i.signer.SignMessagingToken(req.UID, req.Role, expireAt)
	if err != nil {
		return nil, err
	}

	return &tokens.TokenPair{
		RTCToken: rtcToken,
		RTMToken: rtmToken,
	}, nil
}
