// model/template.go
package model

// Template is a named dashboard blueprint declared in configuration. The
// widget list holds widget type identifiers; creating a dashboard from a
// template copies them into fresh widget instances with empty grants.
type Template struct {
	Identifier string   `json:"identifier" mapstructure:"identifier"`
	Label      string   `json:"label" mapstructure:"label"`
	Widgets    []string `json:"widgets" mapstructure:"widgets"`
}
