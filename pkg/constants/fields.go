package constants

// Identifiants des champs du formulaire de commande. La matrice de visibilité
// et l'historique ne raisonnent que sur ces identifiants, jamais sur des
// libellés d'affichage.

// Section distingue les deux niveaux du formulaire.
type Section string

const (
	SectionOrder   Section = "orderLevel"
	SectionProduct Section = "productLevel"
)

// --- Champs niveau commande ---
const (
	FieldNumeroAffaire        = "numero_affaire"
	FieldNumeroDM             = "numero_dm"
	FieldClient               = "client"
	FieldCommercialEnCharge   = "commercial_en_charge"
	FieldDateLivraisonEstimee = "date_livraison_estimee"
	FieldStatut               = "statut"
)

// --- Champs niveau produit ---
const (
	FieldProduit            = "produit"
	FieldQuantite           = "quantite"
	FieldPrixUnitaire       = "prix_unitaire"
	FieldNumeroPMS          = "numero_pms"
	FieldInfographEnCharge  = "infograph_en_charge"
	FieldAgentImpression    = "agent_impression"
	FieldMachineImpression  = "machine_impression"
	FieldEtape              = "etape"
	FieldAtelierConcerne    = "atelier_concerne"
	FieldTempsTravailEstime = "temps_travail_estime"
	FieldBat                = "bat"
	FieldExpress            = "express"
	FieldPackFinAnnee       = "pack_fin_annee"
	FieldCommentaires       = "commentaires"
	FieldTypeSousTraitance  = "type_sous_traitance"
	FieldFournisseur        = "fournisseur"
	FieldFinitions          = "finitions"
)

// OrderFields et ProductFields fixent le périmètre complet connu de la matrice.
var OrderFields = []string{
	FieldNumeroAffaire,
	FieldNumeroDM,
	FieldClient,
	FieldCommercialEnCharge,
	FieldDateLivraisonEstimee,
	FieldStatut,
}

var ProductFields = []string{
	FieldProduit,
	FieldQuantite,
	FieldPrixUnitaire,
	FieldNumeroPMS,
	FieldInfographEnCharge,
	FieldAgentImpression,
	FieldMachineImpression,
	FieldEtape,
	FieldAtelierConcerne,
	FieldTempsTravailEstime,
	FieldBat,
	FieldExpress,
	FieldPackFinAnnee,
	FieldCommentaires,
	FieldTypeSousTraitance,
	FieldFournisseur,
	FieldFinitions,
}
