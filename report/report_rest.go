package report

import (
	"changeflow/domain/order"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	PathReports = "/v1/reports"
)

func RegisterReportRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathReports, middleWares...)
	g.GET("/change-orders", handleChangeOrderReport)
}

func handleChangeOrderReport(c *gin.Context) {
	f, err := BuildChangeOrderReportFunc(order.ActiveStore.Orders(), order.ActiveStore.Settings())
	if err != nil {
		panic(err)
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="change-orders.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		panic(err)
	}
}
