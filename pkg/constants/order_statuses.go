package constants

// --- STATUTS DES COMMANDES (codes identiques au backend) ---
const (
	StatusEnCours           = "en_cours"
	StatusAttenteValidation = "attente_validation"
	StatusModification      = "modification"
	StatusTermine           = "termine"
	StatusLivre             = "livre"
	StatusAnnule            = "annule"
	StatusProblemTechnique  = "problem_technique"
)

// AllStatuses dans l'ordre d'affichage des listes déroulantes.
var AllStatuses = []string{
	StatusEnCours,
	StatusAttenteValidation,
	StatusModification,
	StatusTermine,
	StatusLivre,
	StatusAnnule,
	StatusProblemTechnique,
}

// Statuts archivés : une commande passe dans l'historique dès qu'elle les atteint.
var ArchivedStatuses = []string{
	StatusLivre,
	StatusAnnule,
}

// Fonction-contrôle
func IsArchivedStatus(code string) bool {
	for _, s := range ArchivedStatuses {
		if s == code {
			return true
		}
	}
	return false
}

func IsKnownStatus(code string) bool {
	for _, s := range AllStatuses {
		if s == code {
			return true
		}
	}
	return false
}
