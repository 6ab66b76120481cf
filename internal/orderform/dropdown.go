package orderform

// Sous-état des listes déroulantes de recherche (produit, finition,
// fournisseur). Clé structurée plutôt que concaténation de chaînes : pas de
// collision possible entre `12-3` ligne 12 finition 3 et ligne 1 finition 23.

type DropdownKind int

const (
	DropdownProduct DropdownKind = iota
	DropdownFinition
	DropdownSupplier
)

// DropdownKey identifie un widget de recherche. FinitionID ne sert que pour
// les menus de finition.
type DropdownKey struct {
	Row        int
	Kind       DropdownKind
	FinitionID uint64
}

// DropdownState : état d'un menu de recherche.
type DropdownState struct {
	Open  bool
	Query string
}

// Dropdown retourne l'état courant du widget, vierge s'il n'a jamais servi.
func (f *Form) Dropdown(key DropdownKey) DropdownState {
	if st, ok := f.dropdowns[key]; ok {
		return *st
	}
	return DropdownState{}
}

// OpenDropdown ouvre un menu. Un seul menu ouvert à la fois : l'ouverture
// remplace implicitement tout autre menu ouvert.
func (f *Form) OpenDropdown(key DropdownKey) {
	for k, st := range f.dropdowns {
		if k != key {
			st.Open = false
		}
	}
	st, ok := f.dropdowns[key]
	if !ok {
		st = &DropdownState{}
		f.dropdowns[key] = st
	}
	st.Open = true
}

// SetDropdownQuery met à jour le texte de recherche du menu.
func (f *Form) SetDropdownQuery(key DropdownKey, query string) {
	st, ok := f.dropdowns[key]
	if !ok {
		st = &DropdownState{}
		f.dropdowns[key] = st
	}
	st.Query = query
}

// CloseOutside ferme tous les menus ouverts hors de la région désignée.
// C'est la capacité "clic à l'extérieur" : la couche de rendu l'appelle avec
// la région qui a reçu l'interaction.
func (f *Form) CloseOutside(region DropdownKey) {
	for k, st := range f.dropdowns {
		if k != region {
			st.Open = false
		}
	}
}

// resetDropdown efface complètement le sous-état d'un widget (sélection
// faite ou ligne invalidée).
func (f *Form) resetDropdown(key DropdownKey) {
	delete(f.dropdowns, key)
}

// dropConcernedDropdowns retire les sous-états de la ligne supprimée et
// renumérote ceux des lignes suivantes.
func (f *Form) dropConcernedDropdowns(row int) {
	rekeyed := make(map[DropdownKey]*DropdownState, len(f.dropdowns))
	for k, st := range f.dropdowns {
		switch {
		case k.Row == row:
			// ligne partie, état perdu
		case k.Row > row:
			k.Row--
			rekeyed[k] = st
		default:
			rekeyed[k] = st
		}
	}
	f.dropdowns = rekeyed
}
