// accesscontrol/attribute/resource.go
package attribute

// Resource identifies a protected object. Attribute providers append
// permission attributes to it before the decision point combines them into
// a verdict.
type Resource interface {
	// Name is the namespaced resource name permission attributes are bound
	// to, e.g. "dashboard:3f2a...".
	Name() string
	// Identifier is the bare storage identifier (dashboard identifier or
	// widget instance hash).
	Identifier() string
	AddPermissions(permissions ...Permission)
	Permissions() []Permission
}

// DashboardAttribute is the resource attribute of a whole dashboard.
type DashboardAttribute struct {
	identifier  string
	permissions []Permission
}

func NewDashboard(identifier string) *DashboardAttribute {
	return &DashboardAttribute{identifier: identifier}
}

func (d *DashboardAttribute) Name() string {
	return "dashboard:" + d.identifier
}

func (d *DashboardAttribute) Identifier() string {
	return d.identifier
}

func (d *DashboardAttribute) AddPermissions(permissions ...Permission) {
	d.permissions = append(d.permissions, permissions...)
}

func (d *DashboardAttribute) Permissions() []Permission {
	return d.permissions
}

// WidgetAttribute is the resource attribute of a single widget instance. It
// keeps a back-reference to the owning dashboard attribute; the relation
// carries no ownership, widget lookup itself is hash-addressed.
type WidgetAttribute struct {
	identifier  string
	widgetType  string
	dashboard   *DashboardAttribute
	permissions []Permission
}

func NewWidget(widgetType, identifier string, dashboard *DashboardAttribute) *WidgetAttribute {
	return &WidgetAttribute{
		identifier: identifier,
		widgetType: widgetType,
		dashboard:  dashboard,
	}
}

func (w *WidgetAttribute) Name() string {
	return "widget:" + w.identifier
}

func (w *WidgetAttribute) Identifier() string {
	return w.identifier
}

// Type is the tag derived from the widget type name.
func (w *WidgetAttribute) Type() string {
	return "widget:" + w.widgetType
}

func (w *WidgetAttribute) Dashboard() *DashboardAttribute {
	return w.dashboard
}

func (w *WidgetAttribute) AddPermissions(permissions ...Permission) {
	w.permissions = append(w.permissions, permissions...)
}

func (w *WidgetAttribute) Permissions() []Permission {
	return w.permissions
}
