package settings

import (
	"changeflow/bizerror"
	"changeflow/domain"
	"changeflow/domain/order"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathSettings = "/v1/settings"
)

func RegisterSettingsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathSettings, middleWares...)
	g.GET("", handleQuerySettings)
	g.PUT("", handleSaveSettings)
}

func handleQuerySettings(c *gin.Context) {
	c.JSON(http.StatusOK, order.ActiveStore.Settings())
}

func handleSaveSettings(c *gin.Context) {
	settings := domain.AppSettings{}
	if err := c.ShouldBindBodyWith(&settings, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	saved, err := SaveAppSettingsFunc(c.Request.Context(), settings)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, saved)
}
