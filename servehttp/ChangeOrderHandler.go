package servehttp

import (
	"changeflow/bizerror"
	"changeflow/domain/order"
	"changeflow/domain/search"
	"changeflow/security"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathChangeOrders         = "/v1/change-orders"
	PathChangeOrderRenumbers = "/v1/change-order-renumbers"
)

func RegisterChangeOrderHandler(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathChangeOrders, middleWares...)
	g.GET("", handleQueryChangeOrders)
	g.GET("/:id", handleDetailChangeOrder)
	g.POST("", handleCreateChangeOrder)
	g.PUT("/:id", handleUpdateChangeOrder)
	g.DELETE("", security.AdminRequired(), handleDeleteChangeOrders)

	renumbers := r.Group(PathChangeOrderRenumbers, middleWares...)
	renumbers.POST("", security.AdminRequired(), handleRenumberChangeOrders)
}

func handleQueryChangeOrders(c *gin.Context) {
	query := search.ChangeOrderQuery{}
	if err := c.ShouldBindWith(&query, binding.Query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	c.JSON(http.StatusOK, order.QueryChangeOrdersFunc(query))
}

func handleDetailChangeOrder(c *gin.Context) {
	detail, err := order.DetailChangeOrderFunc(parseIdParam(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, detail)
}

func handleCreateChangeOrder(c *gin.Context) {
	submission := order.ChangeOrderSubmission{}
	if err := c.ShouldBindBodyWith(&submission, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := order.CreateChangeOrderFunc(&submission)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, record)
}

func handleUpdateChangeOrder(c *gin.Context) {
	submission := order.ChangeOrderSubmission{}
	if err := c.ShouldBindBodyWith(&submission, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	submission.ID = parseIdParam(c)
	record, err := order.UpdateChangeOrderFunc(&submission)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleDeleteChangeOrders(c *gin.Context) {
	params := c.QueryArray("id")
	ids := make([]int64, 0, len(params))
	for _, param := range params {
		id, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			panic(&bizerror.ErrBadParam{Cause: err})
		}
		ids = append(ids, id)
	}
	if err := order.DeleteChangeOrdersFunc(ids); err != nil {
		panic(err)
	}
	c.AbortWithStatus(http.StatusNoContent)
}

func handleRenumberChangeOrders(c *gin.Context) {
	c.JSON(http.StatusOK, order.RenumberChangeOrdersFunc())
}

func parseIdParam(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	return id
}
