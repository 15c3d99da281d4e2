// accesscontrol/attribute/principal.go
package attribute

import "fmt"

// PrincipalKind is the namespace segment of a compound principal
// identifier.
type PrincipalKind string

const (
	KindUser  PrincipalKind = "be_user"
	KindGroup PrincipalKind = "be_group"
)

// PrincipalAttribute is the typed identity of a subject facet eligible to
// hold permissions. Identity equality is by (kind, id).
type PrincipalAttribute struct {
	Kind PrincipalKind
	ID   int
}

func User(id int) PrincipalAttribute {
	return PrincipalAttribute{Kind: KindUser, ID: id}
}

func Group(id int) PrincipalAttribute {
	return PrincipalAttribute{Kind: KindGroup, ID: id}
}

// Identifier renders the compound "<type>:<id>" form used as a key in
// stored permission tables.
func (p PrincipalAttribute) Identifier() string {
	return fmt.Sprintf("%s:%d", p.Kind, p.ID)
}

// FilterPrincipals returns the principals for which keep reports true,
// preserving order.
func FilterPrincipals(principals []PrincipalAttribute, keep func(PrincipalAttribute) bool) []PrincipalAttribute {
	var filtered []PrincipalAttribute
	for _, principal := range principals {
		if keep(principal) {
			filtered = append(filtered, principal)
		}
	}
	return filtered
}
