// pkg/constants/constants.go
package constants

//============== ROLES ==============

// Role définit le type pour les rôles utilisateurs côté interface.
type Role string

const (
	RoleCommercial Role = "commercial"
	RoleInfograph  Role = "infograph"
	RoleAtelier    Role = "atelier"
	RoleAdmin      Role = "admin"
)

// String retourne la représentation texte du rôle.
func (r Role) String() string {
	return string(r)
}

// KnownRoles liste tous les rôles connus du système.
var KnownRoles = []Role{RoleCommercial, RoleInfograph, RoleAtelier, RoleAdmin}

// IsKnownRole vérifie qu'un rôle fait partie du référentiel.
func IsKnownRole(code string) bool {
	for _, r := range KnownRoles {
		if string(r) == code {
			return true
		}
	}
	return false
}

//============== BAT / CHOIX OUI-NON ==============

// Valeurs du champ BAT (bon à tirer).
const (
	BatAvec = "avec"
	BatSans = "sans"
)

// Valeurs des champs express / pack fin d'année.
const (
	ChoixOui = "oui"
	ChoixNon = "non"
)

//============== SOUS-TRAITANCE ==============

// Types de sous-traitance proposés dans le formulaire.
const (
	SousTraitanceImpression = "impression"
	SousTraitanceFinition   = "finition"
	SousTraitanceComplete   = "complete"
)
