package api

import (
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/pariparajuli/geosurvey/utils"
)

// localize renders msg in the language asked for by the client
func localize(c *gin.Context, msg *i18n.Message) string {
	loc := utils.NewLocalizer(c.GetHeader("Accept-Language"))
	if loc == nil {
		return msg.Other
	}

	s, err := loc.Localize(&i18n.LocalizeConfig{DefaultMessage: msg})
	if err != nil && s == "" {
		return msg.Other
	}
	return s
}
