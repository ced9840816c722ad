package projectfile

import (
	"changeflow/bizerror"
	"changeflow/security"
	"io/ioutil"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	PathProjectFile = "/v1/project-file"
)

func RegisterProjectFileRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathProjectFile, middleWares...)
	g.GET("", handleExportProjectFile)
	g.POST("", security.AdminRequired(), handleImportProjectFile)
}

func handleExportProjectFile(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="project.json"`)
	c.JSON(http.StatusOK, ExportProjectFileFunc())
}

func handleImportProjectFile(c *gin.Context) {
	content, err := ioutil.ReadAll(c.Request.Body)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	document, err := ImportProjectFileFunc(content)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, document)
}
