package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/weixuan2008/tele-sales-token-server/internal/log"
	"github.com/weixuan2008/tele-sales-token-server/tokens"
	"github.com/weixuan2008/tele-sales-token-server/tokens/mocks"
)

func setupRouter(t *testing.T) (*Router, *mocks.MockIssuer) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockIssuer := mocks.NewMockIssuer(ctrl)
	router := NewRouter(mockIssuer, log.NewTest(t))
	return router, mockIssuer
}

func doGet(router *Router, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	router.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err)
	return body
}

func TestPing(t *testing.T) {
	router, _ := setupRouter(t)

	w := doGet(router, "/ping")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decodeBody(t, w)["message"])
}

func TestRtcToken(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockIssuer := setupRouter(t)

		mockIssuer.EXPECT().MediaToken(&tokens.TokenRequest{
			ChannelName:  "demo-channel",
			UID:          "42",
			Role:         tokens.RolePublisher,
			IdentityMode: tokens.IdentityByUID,
			TTLSeconds:   60,
		}).Return("rtc-token", nil)

		w := doGet(router, "/rtc/demo-channel/publisher/uid/42?expiry=60")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "rtc-token", decodeBody(t, w)["rtcToken"])
	})

	t.Run("DefaultExpiry", func(t *testing.T) {
		router, mockIssuer := setupRouter(t)

		mockIssuer.EXPECT().MediaToken(gomock.Any()).DoAndReturn(func(req *tokens.TokenRequest) (string, error) {
			assert.Equal(t, tokens.DefaultTTLSeconds, req.TTLSeconds)
			return "rtc-token", nil
		})

		w := doGet(router, "/rtc/demo-channel/audience/userAccount/alice")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ValidationError", func(t *testing.T) {
		router, _ := setupRouter(t)

		tests := []struct {
			name    string
			path    string
			wantErr string
		}{
			{
				name:    "empty channel",
				path:    "/rtc//publisher/uid/42",
				wantErr: "channel is required",
			},
			{
				name:    "bad role",
				path:    "/rtc/demo-channel/host/uid/42",
				wantErr: "role is incorrect",
			},
			{
				name:    "bad token type",
				path:    "/rtc/demo-channel/publisher/jwt/42",
				wantErr: "token type is invalid",
			},
			{
				name:    "non-numeric uid in uid mode",
				path:    "/rtc/demo-channel/publisher/uid/alice",
				wantErr: "uid is invalid",
			},
			{
				name:    "non-numeric expiry",
				path:    "/rtc/demo-channel/publisher/uid/42?expiry=soon",
				wantErr: "expiry is invalid",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := doGet(router, tt.path)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Equal(t, tt.wantErr, decodeBody(t, w)["error"])
			})
		}
	})

	t.Run("SignerError", func(t *testing.T) {
		router, mockIssuer := setupRouter(t)

		mockIssuer.EXPECT().MediaToken(gomock.Any()).Return("", assert.AnError)

		w := doGet(router, "/rtc/demo-channel/publisher/uid/42")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("NoCacheHeaders", func(t *testing.T) {
		router, mockIssuer := setupRouter(t)

		mockIssuer.EXPECT().MediaToken(gomock.Any()).Return("rtc-token", nil)

		w := doGet(router, "/rtc/demo-channel/publisher/uid/42")

		assert.Equal(t, "private, no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
		assert.Equal(t, "-1", w.Header().Get("Expires"))
		assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
	})

	t.Run("OpenCORS", func(t *testing.T) {
		router, mockIssuer := setupRouter(t)

		mockIssuer.EXPECT().MediaToken(gomock.Any()).Return("rtc-token", nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/rtc/demo-channel/publisher/uid/42", nil)
		req.Header.Set("Origin", "https://example.com")
		router.Handler().ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRtmToken(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockIssuer := setupRouter(t)

		mockIssuer.EXPECT().MessagingToken(&tokens.TokenRequest{
			UID:        "42",
			TTLSeconds: tokens.DefaultTTLSeconds,
		}).Return("rtm-token", nil)

		w := doGet(router, "/rtm/42")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "rtm-token", body["rtmToken"])
		assert.NotContains(t, body, "rtcToken")
	})

	t.Run("SignerError", func(t *testing.T) {
		router, mockIssuer := setupRouter(t)

		mockIssuer.EXPECT().MessagingToken(gomock.Any()).Return("", assert.AnError)

		w := doGet(router, "/rtm/42")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBothTokens(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockIssuer := setupRouter(t)

		mockIssuer.EXPECT().CombinedTokens(&tokens.TokenRequest{
			ChannelName:  "demo-channel",
			UID:          "42",
			Role:         tokens.RoleSubscriber,
			IdentityMode: tokens.IdentityByUID,
			TTLSeconds:   tokens.DefaultTTLSeconds,
		}).Return(&tokens.TokenPair{
			RTCToken: "rtc-token",
			RTMToken: "rtm-token",
		}, nil)

		w := doGet(router, "/rte/demo-channel/audience/uid/42")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "rtc-token", body["rtcToken"])
		assert.Equal(t, "rtm-token", body["rtmToken"])
	})

	t.Run("TokenTypeIgnored", func(t *testing.T) {
		router, mockIssuer := setupRouter(t)

		mockIssuer.EXPECT().CombinedTokens(gomock.Any()).DoAndReturn(func(req *tokens.TokenRequest) (*tokens.TokenPair, error) {
			assert.Equal(t, tokens.IdentityByUID, req.IdentityMode)
			return &tokens.TokenPair{RTCToken: "a", RTMToken: "b"}, nil
		})

		// tokentype segment carries a value the media endpoint would reject
		w := doGet(router, "/rte/demo-channel/publisher/jwt/42")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ValidationError", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doGet(router, "/rte/demo-channel/host/uid/42")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "role is incorrect", decodeBody(t, w)["error"])
	})

	t.Run("EmptyChannel", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doGet(router, "/rte//publisher/uid/42")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "channel is required", decodeBody(t, w)["error"])
	})
}
