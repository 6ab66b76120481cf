package routes

import (
	"github.com/labstack/echo/v4"

	"printfront/internal/controllers"
)

func runReferenceRouter(secureGroup *echo.Group, referenceCtrl *controllers.ReferenceController) {
	{
		secureGroup.GET("/references/products", referenceCtrl.GetProducts)
		secureGroup.GET("/references/users", referenceCtrl.GetUsers)
		secureGroup.GET("/references/suppliers", referenceCtrl.GetSuppliers)
		secureGroup.GET("/references/finitions", referenceCtrl.GetFinitions)
	}
}
