package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weixuan2008/tele-sales-token-server/tokens"
)

var testCreds = tokens.Credentials{
	// sample credentials from the Agora builder docs, not real ones
	AppID:          "970CA35de60c44645bbae8a215061b33",
	AppCertificate: "5CFd2fd1755d40ecb72977518be15d3b",
}

func TestSignMediaToken(t *testing.T) {
	s := New(testCreds)
	expireAt := uint32(1_700_000_000)

	t.Run("UIDMode", func(t *testing.T) {
		token, err := s.SignMediaToken("demo-channel", "42", tokens.IdentityByUID, tokens.RolePublisher, expireAt)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("AccountMode", func(t *testing.T) {
		token, err := s.SignMediaToken("demo-channel", "alice", tokens.IdentityByAccount, tokens.RolePublisher, expireAt)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("SubscriberRole", func(t *testing.T) {
		token, err := s.SignMediaToken("demo-channel", "alice", tokens.IdentityByAccount, tokens.RoleSubscriber, expireAt)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("NonNumericUIDInUIDMode", func(t *testing.T) {
		_, err := s.SignMediaToken("demo-channel", "alice", tokens.IdentityByUID, tokens.RolePublisher, expireAt)
		assert.ErrorIs(t, err, ErrSignFailed)
	})
}

func TestSignMessagingToken(t *testing.T) {
	s := New(testCreds)
	expireAt := uint32(1_700_000_000)

	t.Run("FixedUserRole", func(t *testing.T) {
		token, err := s.SignMessagingToken("alice", tokens.RoleMessagingUser, expireAt)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("MediaRolePassthrough", func(t *testing.T) {
		// combined requests forward the media role value
		token, err := s.SignMessagingToken("42", tokens.RoleSubscriber, expireAt)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})
}
