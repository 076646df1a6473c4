package transport

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/weixuan2008/tele-sales-token-server/internal/log"
	"github.com/weixuan2008/tele-sales-token-server/tokens"
)

type Router struct {
	issuer tokens.Issuer
	engine *gin.Engine
	logger *log.Logger
}

func NewRouter(issuer tokens.Issuer, logger *log.Logger) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// Add OpenTelemetry middleware for automatic HTTP tracing
	engine.Use(otelgin.Middleware("token-server"))
	engine.Use(requestID())

	// Token consumers are browser clients on other origins
	engine.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))

	r := &Router{
		issuer: issuer,
		engine: engine,
		logger: logger,
	}

	r.setupRoutes()
	return r
}

func (r *Router) Handler() http.Handler {
	return r.engine
}

func (r *Router) setupRoutes() {
	r.engine.GET("/ping", r.ping)

	// Suppress caching on token routes so an expired token is never
	// replayed from a cache.
	token := r.engine.Group("", noCache(), observeDuration())
	token.GET("/rtc/:channel/:role/:tokentype/:uid", r.rtcToken)
	token.GET("/rtm/:uid", r.rtmToken)
	token.GET("/rte/:channel/:role/:tokentype/:uid", r.bothTokens)
}

func (r *Router) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

func (r *Router) rtcToken(c *gin.Context) {
	req, err := tokens.NormalizeMedia(mediaParams(c))
	if err != nil {
		r.rejectRequest(c, err)
		return
	}

	token, err := r.issuer.MediaToken(req)
	if err != nil {
		r.signError(c, req, err)
		return
	}
	rtcIssued.Add(c.Request.Context(), 1)

	r.logger.Info("RTC token issued",
		log.String("channel", req.ChannelName),
		log.String("uid", req.UID),
		log.Uint32("ttl", req.TTLSeconds),
	)

	c.JSON(http.StatusOK, gin.H{
		"rtcToken": token,
	})
}

func (r *Router) rtmToken(c *gin.Context) {
	req, err := tokens.NormalizeMessaging(messagingParams(c))
	if err != nil {
		r.rejectRequest(c, err)
		return
	}

	token, err := r.issuer.MessagingToken(req)
	if err != nil {
		r.signError(c, req, err)
		return
	}
	rtmIssued.Add(c.Request.Context(), 1)

	r.logger.Info("RTM token issued",
		log.String("uid", req.UID),
		log.Uint32("ttl", req.TTLSeconds),
	)

	c.JSON(http.StatusOK, gin.H{
		"rtmToken": token,
	})
}

func (r *Router) bothTokens(c *gin.Context) {
	req, err := tokens.NormalizeCombined(mediaParams(c))
	if err != nil {
		r.rejectRequest(c, err)
		return
	}

	pair, err := r.issuer.CombinedTokens(req)
	if err != nil {
		r.signError(c, req, err)
		return
	}
	combinedIssued.Add(c.Request.Context(), 1)

	r.logger.Info("Combined tokens issued",
		log.String("channel", req.ChannelName),
		log.String("uid", req.UID),
		log.Uint32("ttl", req.TTLSeconds),
	)

	c.JSON(http.StatusOK, pair)
}

func (r *Router) rejectRequest(c *gin.Context, err error) {
	validationFailed.Add(c.Request.Context(), 1)
	c.JSON(http.StatusBadRequest, gin.H{
		"error": err.Error(),
	})
}

func (r *Router) signError(c *gin.Context, req *tokens.TokenRequest, err error) {
	signFailed.Add(c.Request.Context(), 1)
	r.logger.Error("Failed to sign token",
		log.String("channel", req.ChannelName),
		log.String("uid", req.UID),
		log.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func noCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "private, no-cache, no-store, must-revalidate")
		c.Header("Expires", "-1")
		c.Header("Pragma", "no-cache")
		c.Next()
	}
}

func observeDuration() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		requestDuration.Record(c.Request.Context(), time.Since(start).Seconds())
	}
}
