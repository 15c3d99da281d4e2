// util/validation_util.go

package util

import (
	"fmt"

	"github.com/rohanverma/dashgate/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateDashboard(dashboard model.Dashboard) error {
	if dashboard.Identifier == "" {
		return fmt.Errorf("dashboard identifier cannot be empty")
	}
	if dashboard.Label == "" {
		return fmt.Errorf("dashboard label cannot be empty")
	}
	for hash, widget := range dashboard.Configuration.Widgets {
		if hash == "" {
			return fmt.Errorf("widget instance hash cannot be empty")
		}
		if err := v.ValidateWidgetInstance(widget); err != nil {
			return err
		}
	}
	if err := v.ValidatePermissionTable(dashboard.Configuration.Permissions); err != nil {
		return err
	}
	return nil
}

func (v *ValidationUtil) ValidateWidgetInstance(widget model.WidgetInstance) error {
	if widget.Identifier == "" {
		return fmt.Errorf("widget type identifier cannot be empty")
	}
	return v.ValidatePermissionTable(widget.Permissions)
}

func (v *ValidationUtil) ValidatePermissionTable(table model.PermissionTable) error {
	for principal, actions := range table {
		if principal == "" {
			return fmt.Errorf("principal identifier cannot be empty")
		}
		for action, state := range actions {
			if action == "" {
				return fmt.Errorf("action name cannot be empty")
			}
			if !state.Valid() {
				return fmt.Errorf("permission state must be either 'permit' or 'deny', got %q", state)
			}
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateTemplate(template model.Template) error {
	if template.Identifier == "" {
		return fmt.Errorf("template identifier cannot be empty")
	}
	if template.Label == "" {
		return fmt.Errorf("template label cannot be empty")
	}
	return nil
}
