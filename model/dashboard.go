// model/dashboard.go
package model

import (
	"encoding/json"
	"fmt"
)

// PermissionState is the state of a single grant entry.
type PermissionState string

const (
	StatePermit PermissionState = "permit"
	StateDeny   PermissionState = "deny"
)

func (s PermissionState) Valid() bool {
	return s == StatePermit || s == StateDeny
}

// PermissionTable maps a principal identifier ("be_user:<id>" or
// "be_group:<id>") to the actions granted or denied for that principal,
// e.g. {"be_user:1": {"dashboard:view": "permit"}}.
type PermissionTable map[string]map[string]PermissionState

// PermissionEntry is one flattened grant from a PermissionTable. Entries are
// what gets cached between the configuration store and the attribute
// provider.
type PermissionEntry struct {
	Principal string          `json:"principal"`
	Action    string          `json:"action"`
	State     PermissionState `json:"state"`
}

// Flatten converts a table into its entry list. Iteration order over the
// maps is not deterministic; consumers must treat the result as a set.
func (t PermissionTable) Flatten() []PermissionEntry {
	var entries []PermissionEntry
	for principal, actions := range t {
		for action, state := range actions {
			entries = append(entries, PermissionEntry{
				Principal: principal,
				Action:    action,
				State:     state,
			})
		}
	}
	return entries
}

// WidgetInstance is a configured placement of a widget type on a dashboard,
// addressed by a hash unique within the owning dashboard.
type WidgetInstance struct {
	Identifier  string          `json:"identifier"`
	Config      json.RawMessage `json:"config,omitempty"`
	Permissions PermissionTable `json:"permissions,omitempty"`
}

// DashboardConfiguration is the document persisted in the configuration
// column of a dashboard row. Widget instances and the optional
// dashboard-scoped permission table live inside it; the store only ever
// reads or replaces the document as a whole.
type DashboardConfiguration struct {
	Widgets     map[string]WidgetInstance `json:"widgets"`
	Permissions PermissionTable           `json:"permissions,omitempty"`
}

// Dashboard is one row of the configuration store.
type Dashboard struct {
	Identifier    string                 `json:"identifier"`
	Label         string                 `json:"label"`
	Configuration DashboardConfiguration `json:"configuration"`
}

// EncodeConfiguration serializes the configuration document for storage.
func (d *Dashboard) EncodeConfiguration() (string, error) {
	data, err := json.Marshal(d.Configuration)
	if err != nil {
		return "", fmt.Errorf("failed to marshal dashboard configuration: %w", err)
	}
	return string(data), nil
}

// DecodeConfiguration parses a stored configuration document. A row with an
// empty document yields an empty widget map rather than nil so callers can
// range without checking.
func DecodeConfiguration(raw string) (DashboardConfiguration, error) {
	var configuration DashboardConfiguration
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &configuration); err != nil {
			return configuration, fmt.Errorf("failed to unmarshal dashboard configuration: %w", err)
		}
	}
	if configuration.Widgets == nil {
		configuration.Widgets = map[string]WidgetInstance{}
	}
	return configuration, nil
}
