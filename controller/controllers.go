// controller/controllers.go
package controller

import "github.com/rohanverma/dashgate/service"

type Controllers struct {
	Dashboard *DashboardController
	Widget    *WidgetController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Dashboard: NewDashboardController(services.Dashboard, services.Access),
		Widget:    NewWidgetController(services.Dashboard, services.Access),
	}
}
