// widgets/dashboard_count.go
package widgets

import (
	"context"
	"fmt"

	"github.com/rohanverma/dashgate/model"
)

// DashboardLister is the read access the count widget needs from the
// configuration store.
type DashboardLister interface {
	GetAllDashboards(ctx context.Context) ([]*model.Dashboard, error)
}

// DashboardCountWidget shows how many dashboards exist in the store.
type DashboardCountWidget struct {
	lister DashboardLister
}

func NewDashboardCountFactory(lister DashboardLister) Factory {
	return func() Widget {
		return &DashboardCountWidget{lister: lister}
	}
}

func (w *DashboardCountWidget) Title() string {
	return "Dashboards"
}

func (w *DashboardCountWidget) Height() int {
	return 1
}

func (w *DashboardCountWidget) Width() int {
	return 1
}

func (w *DashboardCountWidget) RenderContent(ctx context.Context) (string, error) {
	dashboards, err := w.lister.GetAllDashboards(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to count dashboards: %w", err)
	}
	return fmt.Sprintf(`<div class="widget-number">%d</div>`, len(dashboards)), nil
}

func (w *DashboardCountWidget) EventData() map[string]interface{} {
	return map[string]interface{}{}
}
