package entity

// teamMembers conjunto fijo de miembros del equipo de ventas asignables.
var teamMembers = []string{"Taryn", "Darryn", "Jamie", "Yaseen", "Wesley", "Sales"}

// emailToMember mapea emails de usuarios a su nombre visible en el equipo.
var emailToMember = map[string]string{
	"dyan@merchanthaus.io":    "Wesley",
	"admin@merchanthaus.io":   "Jamie",
	"support@merchanthaus.io": "Yaseen",
	"taryn@merchanthaus.io":   "Taryn",
	"sales@merchanthaus.io":   "Sales",
}

// TeamMembers devuelve los miembros asignables (copia).
func TeamMembers() []string {
	out := make([]string, len(teamMembers))
	copy(out, teamMembers)
	return out
}

// ValidTeamMember indica si name pertenece al equipo fijo.
func ValidTeamMember(name string) bool {
	for _, m := range teamMembers {
		if m == name {
			return true
		}
	}
	return false
}

// MemberForEmail devuelve el nombre de equipo asociado a un email ("" si no hay mapeo).
func MemberForEmail(email string) string {
	return emailToMember[email]
}
