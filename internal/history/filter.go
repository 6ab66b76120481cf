// Fichier: internal/history/filter.go
package history

import (
	"net/url"
	"strconv"
	"strings"

	"printfront/pkg/constants"
)

// TriState : filtre oui/non/indifférent des champs bat, express et pack fin
// d'année.
type TriState string

const (
	TriAny TriState = ""
	TriOui TriState = "oui"
	TriNon TriState = "non"
)

// MultiSelect : filtre à valeurs multiples. Vide = aucune restriction.
type MultiSelect struct {
	Options  []string
	Selected []string
}

// Toggle ajoute ou retire une valeur de la sélection.
func (m *MultiSelect) Toggle(value string) {
	for i, v := range m.Selected {
		if v == value {
			m.Selected = append(m.Selected[:i], m.Selected[i+1:]...)
			return
		}
	}
	m.Selected = append(m.Selected, value)
}

// SelectAll bascule la sélection globale : tout était sélectionné → plus
// rien ; sinon → tout.
func (m *MultiSelect) SelectAll() {
	if len(m.Selected) == len(m.Options) {
		m.Selected = nil
		return
	}
	m.Selected = append([]string(nil), m.Options...)
}

// Filter : état complet des filtres de l'historique. Le statut est restreint
// au sous-ensemble archivé (livre, annule) plus "tous".
type Filter struct {
	Statut            string // "", "livre" ou "annule"
	Commercial        MultiSelect
	Infographe        MultiSelect
	AgentImpression   MultiSelect
	Atelier           MultiSelect
	Etape             MultiSelect
	TypeSousTraitance MultiSelect
	Client            string // sous-chaîne, texte libre
	Search            string // sous-chaîne de numero_pms
	MachineImpression string // visible admin/atelier uniquement
	Bat               TriState
	Express           TriState
	PackFinAnnee      TriState
}

// QueryValues sérialise le filtre pour le backend. Les multi-sélections
// partent jointes par des virgules ; listes vides et chaînes vides sont
// omises pour laisser jouer le défaut backend (aucun filtre).
func (f *Filter) QueryValues(page, limit int) url.Values {
	values := url.Values{}

	setIfNotEmpty := func(key, val string) {
		if val != "" {
			values.Set(key, val)
		}
	}

	setIfNotEmpty("statut", f.Statut)
	setIfNotEmpty("commercial", joinSelected(f.Commercial))
	setIfNotEmpty("infographe", joinSelected(f.Infographe))
	setIfNotEmpty("agent_impression", joinSelected(f.AgentImpression))
	setIfNotEmpty("atelier", joinSelected(f.Atelier))
	setIfNotEmpty("etape", joinSelected(f.Etape))
	setIfNotEmpty("type_sous_traitance", joinSelected(f.TypeSousTraitance))
	setIfNotEmpty("client", f.Client)
	setIfNotEmpty("search", f.Search)
	setIfNotEmpty("machine_impression", f.MachineImpression)
	setIfNotEmpty("bat", string(f.Bat))
	setIfNotEmpty("express", string(f.Express))
	setIfNotEmpty("pack_fin_annee", string(f.PackFinAnnee))

	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(limit))
	return values
}

func joinSelected(m MultiSelect) string {
	return strings.Join(m.Selected, ",")
}

// ParseFilter reconstruit un état de filtre depuis la requête de l'interface.
// Le statut hors du périmètre archivé est ignoré ; le filtre machine
// d'impression n'est retenu que pour les rôles qui y ont droit (la politique
// vit dans la matrice, pas ici).
func ParseFilter(values url.Values, canFilterMachine bool) Filter {
	f := Filter{
		Client:            values.Get("client"),
		Search:            values.Get("search"),
		Bat:               parseTriState(values.Get("bat")),
		Express:           parseTriState(values.Get("express")),
		PackFinAnnee:      parseTriState(values.Get("pack_fin_annee")),
		Commercial:        MultiSelect{Selected: splitSelected(values.Get("commercial"))},
		Infographe:        MultiSelect{Selected: splitSelected(values.Get("infographe"))},
		AgentImpression:   MultiSelect{Selected: splitSelected(values.Get("agent_impression"))},
		Atelier:           MultiSelect{Selected: splitSelected(values.Get("atelier"))},
		Etape:             MultiSelect{Selected: splitSelected(values.Get("etape"))},
		TypeSousTraitance: MultiSelect{Selected: splitSelected(values.Get("type_sous_traitance"))},
	}

	if statut := values.Get("statut"); constants.IsArchivedStatus(statut) {
		f.Statut = statut
	}
	if canFilterMachine {
		f.MachineImpression = values.Get("machine_impression")
	}
	return f
}

func parseTriState(value string) TriState {
	switch value {
	case string(TriOui):
		return TriOui
	case string(TriNon):
		return TriNon
	}
	return TriAny
}

func splitSelected(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}
