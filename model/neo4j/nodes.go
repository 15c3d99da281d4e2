// model/neo4j/nodes.go
package neo4j

// Node labels
const (
	LabelDashboard = "DASHBOARD"
)

// Dashboard node properties
const (
	PropIdentifier    = "identifier"
	PropLabel         = "label"
	PropConfiguration = "configuration"
)
