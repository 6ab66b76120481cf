package constants

// Atelier définit le type d'atelier de production concerné par un produit.
type Atelier string

const (
	AtelierPetitFormat   Atelier = "petit format"
	AtelierGrandFormat   Atelier = "grand format"
	AtelierSousTraitance Atelier = "sous-traitance"
	AtelierServiceCrea   Atelier = "service crea"
)

func (a Atelier) String() string {
	return string(a)
}

// --- ÉTAPES DE PRODUCTION ---
const (
	EtapePrePresse        = "pré-presse"
	EtapeImpression       = "impression"
	EtapeFinition         = "finition"
	EtapeConception       = "conception"
	EtapeTravailGraphique = "travail graphique"
	EtapeEnProduction     = "en production"
	EtapeControleQualite  = "controle qualité"
)

// EtapesParAtelier : chaque atelier impose son jeu d'étapes légales.
var EtapesParAtelier = map[Atelier][]string{
	AtelierPetitFormat:   {EtapePrePresse, EtapeImpression, EtapeFinition},
	AtelierGrandFormat:   {EtapePrePresse, EtapeImpression, EtapeFinition},
	AtelierServiceCrea:   {EtapeConception, EtapeTravailGraphique},
	AtelierSousTraitance: {EtapePrePresse, EtapeEnProduction, EtapeControleQualite},
}

// DefaultEtape retourne l'étape initiale imposée par l'atelier.
// Le service créa n'a pas de défaut : le choix doit être explicite.
func DefaultEtape(atelier Atelier) string {
	switch atelier {
	case AtelierPetitFormat, AtelierGrandFormat, AtelierSousTraitance:
		return EtapePrePresse
	default:
		return ""
	}
}

// IsLegalEtape vérifie qu'une étape appartient au jeu de l'atelier.
func IsLegalEtape(atelier Atelier, etape string) bool {
	for _, e := range EtapesParAtelier[atelier] {
		if e == etape {
			return true
		}
	}
	return false
}
