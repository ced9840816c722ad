package backup

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	PathBackups = "/v1/backups"
)

func RegisterBackupRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathBackups, middleWares...)
	g.POST("", handleCreateBackup)
}

func handleCreateBackup(c *gin.Context) {
	record, err := CreateBackupFunc(c.Request.Context())
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, record)
}
