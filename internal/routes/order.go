package routes

import (
	"github.com/labstack/echo/v4"

	"printfront/internal/controllers"
)

func runOrderRouter(secureGroup *echo.Group, orderCtrl *controllers.OrderController) {
	{
		secureGroup.POST("/orders", orderCtrl.CreateOrder)
		secureGroup.PUT("/orders/:id/products/:productId", orderCtrl.UpdateOrderProduct)
		secureGroup.DELETE("/orders/:id", orderCtrl.DeleteOrder)
	}
}
