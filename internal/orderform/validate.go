package orderform

import (
	"printfront/internal/visibility"
	"printfront/pkg/constants"
	apperrors "printfront/pkg/errors"
)

func errClientRequis() error {
	return apperrors.NewValidationError(0, "Veuillez sélectionner ou saisir un client")
}

func errAucunProduit() error {
	return apperrors.NewValidationError(0, "Veuillez sélectionner au moins un produit")
}

func errLigneInconnue(row int) error {
	return apperrors.NewValidationError(0, "La ligne produit %d n'existe pas", row+1)
}

func errFinitionInconnue(row int, finitionID uint64) error {
	return apperrors.NewValidationError(row+1, "La finition %d est absente du produit %d", finitionID, row+1)
}

// Validate applique les règles de soumission dans l'ordre, en s'arrêtant à la
// première violation. Les messages désignent la ligne produit en index
// 1-indexé ; aucune soumission partielle.
func (f *Form) Validate() error {
	// 1. Un client choisi ou saisi en texte libre.
	if f.ClientID == nil && f.ClientInfo == "" {
		return errClientRequis()
	}

	// 2. Au moins une ligne produit.
	if len(f.Products) == 0 {
		return errAucunProduit()
	}

	// 3. Règles par produit, pilotées par la visibilité du rôle : un champ
	// masqué pour ce rôle n'est jamais exigé.
	m := visibility.Resolve(f.role)
	for i, line := range f.Products {
		num := i + 1

		if line.ProductID == nil || *line.ProductID == 0 {
			return apperrors.NewValidationError(num, "Veuillez sélectionner un produit pour la ligne %d", num)
		}
		if line.Quantity <= 0 {
			return apperrors.NewValidationError(num, "Veuillez saisir une quantité valide pour le produit %d", num)
		}
		if m.ProductLevel[constants.FieldExpress] && line.Express == "" {
			return apperrors.NewValidationError(num, "Veuillez préciser l'option express pour le produit %d", num)
		}
		if m.ProductLevel[constants.FieldPackFinAnnee] && line.PackFinAnnee == "" {
			return apperrors.NewValidationError(num, "Veuillez préciser le pack fin d'année pour le produit %d", num)
		}
		if m.ProductLevel[constants.FieldAtelierConcerne] && line.AtelierConcerne == "" {
			return apperrors.NewValidationError(num, "Veuillez choisir l'atelier concerné pour le produit %d", num)
		}
		if m.ProductLevel[constants.FieldEtape] && line.Etape != "" && line.AtelierConcerne != "" &&
			!constants.IsLegalEtape(constants.Atelier(line.AtelierConcerne), line.Etape) {
			return apperrors.NewValidationError(num, "L'étape choisie n'existe pas pour cet atelier (produit %d)", num)
		}
		if m.ProductLevel[constants.FieldBat] && line.Bat == "" {
			return apperrors.NewValidationError(num, "Veuillez préciser le BAT pour le produit %d", num)
		}
		if line.AtelierConcerne == constants.AtelierSousTraitance.String() &&
			m.ProductLevel[constants.FieldFournisseur] &&
			line.SupplierID == nil {
			return apperrors.NewValidationError(num, "Veuillez sélectionner un fournisseur pour la sous-traitance (produit %d)", num)
		}
	}

	return nil
}
