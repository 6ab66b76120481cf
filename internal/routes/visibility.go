package routes

import (
	"github.com/labstack/echo/v4"

	"printfront/internal/controllers"
)

func runVisibilityRouter(secureGroup *echo.Group, visibilityCtrl *controllers.VisibilityController) {
	secureGroup.GET("/visibility", visibilityCtrl.GetVisibility)
}
