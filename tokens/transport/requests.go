package transport

import (
	"github.com/gin-gonic/gin"

	"github.com/weixuan2008/tele-sales-token-server/tokens"
)

// mediaParams collects the raw segments of the media/combined route shape:
// /:channel/:role/:tokentype/:uid plus the optional expiry query.
func mediaParams(c *gin.Context) tokens.RawParams {
	return tokens.RawParams{
		Channel:   c.Param("channel"),
		Role:      c.Param("role"),
		TokenType: c.Param("tokentype"),
		UID:       c.Param("uid"),
		Expiry:    c.Query("expiry"),
	}
}

func messagingParams(c *gin.Context) tokens.RawParams {
	return tokens.RawParams{
		UID:    c.Param("uid"),
		Expiry: c.Query("expiry"),
	}
}
