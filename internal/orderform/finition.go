package orderform

import (
	"printfront/internal/visibility"
	"printfront/pkg/utils"
)

// FinitionState : une finition posée sur une ligne produit, avec ses agents
// atelier et son créneau. Les dates restent au format de saisie local jusqu'à
// la soumission.
type FinitionState struct {
	FinitionID uint64
	AgentIDs   []uint64
	StartDate  string
	EndDate    string
}

// AddFinition ajoute une finition à la ligne. Silencieusement sans effet pour
// le rôle commercial : les finitions lui sont masquées et verrouillées.
func (f *Form) AddFinition(row int, finitionID uint64) error {
	f.guardRow(row)
	if !visibility.CanMutateFinitions(f.role) {
		return nil
	}
	line, err := f.Line(row)
	if err != nil {
		return err
	}
	line.Finitions = append(line.Finitions, FinitionState{FinitionID: finitionID})
	return nil
}

// RemoveFinition retire une finition de la ligne. Sans effet pour le
// commercial.
func (f *Form) RemoveFinition(row int, finitionID uint64) error {
	f.guardRow(row)
	if !visibility.CanMutateFinitions(f.role) {
		return nil
	}
	line, err := f.Line(row)
	if err != nil {
		return err
	}
	for i := range line.Finitions {
		if line.Finitions[i].FinitionID == finitionID {
			line.Finitions = append(line.Finitions[:i], line.Finitions[i+1:]...)
			break
		}
	}
	f.resetDropdown(DropdownKey{Row: row, Kind: DropdownFinition, FinitionID: finitionID})
	return nil
}

// finitionAt retrouve l'état d'une finition sur une ligne.
func (f *Form) finitionAt(row int, finitionID uint64) (*FinitionState, error) {
	line, err := f.Line(row)
	if err != nil {
		return nil, err
	}
	for i := range line.Finitions {
		if line.Finitions[i].FinitionID == finitionID {
			return &line.Finitions[i], nil
		}
	}
	return nil, errFinitionInconnue(row, finitionID)
}

// SetFinitionAgents remplace les agents assignés. La mise à jour est
// indépendante du droit d'ajout/retrait, mais le commercial reste bloqué sur
// toute mutation de finition.
func (f *Form) SetFinitionAgents(row int, finitionID uint64, agentIDs []uint64) error {
	f.guardRow(row)
	if !visibility.CanMutateFinitions(f.role) {
		return nil
	}
	fin, err := f.finitionAt(row, finitionID)
	if err != nil {
		return err
	}
	fin.AgentIDs = append(fin.AgentIDs[:0], agentIDs...)
	return nil
}

// SetFinitionStart pose la date de début (saisie locale).
func (f *Form) SetFinitionStart(row int, finitionID uint64, start string) error {
	f.guardRow(row)
	if !visibility.CanMutateFinitions(f.role) {
		return nil
	}
	fin, err := f.finitionAt(row, finitionID)
	if err != nil {
		return err
	}
	fin.StartDate = start
	return nil
}

// MarkFinitionDone marque la finition "terminé" : la date de fin prend
// l'heure locale courante, le début reste intact.
func (f *Form) MarkFinitionDone(row int, finitionID uint64) error {
	f.guardRow(row)
	if !visibility.CanMutateFinitions(f.role) {
		return nil
	}
	fin, err := f.finitionAt(row, finitionID)
	if err != nil {
		return err
	}
	fin.EndDate = utils.NowLocalNaive()
	return nil
}

// ClearFinitionDone annule le "terminé" : la fin revient à la chaîne vide,
// pas à nil, et le début n'est pas touché.
func (f *Form) ClearFinitionDone(row int, finitionID uint64) error {
	f.guardRow(row)
	if !visibility.CanMutateFinitions(f.role) {
		return nil
	}
	fin, err := f.finitionAt(row, finitionID)
	if err != nil {
		return err
	}
	fin.EndDate = ""
	return nil
}
