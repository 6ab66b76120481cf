package history

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"printfront/internal/dto"
	"printfront/internal/entities"
	"printfront/pkg/types"

	"go.uber.org/zap"
)

// ErrStaleResponse : la réponse appartient à une requête dépassée par une
// plus récente sur le même créneau ; elle est jetée au lieu d'écraser des
// résultats plus frais.
var ErrStaleResponse = fmt.Errorf("réponse périmée, une requête plus récente est partie")

// QuerySlot numérote les requêtes d'un même créneau de consultation. Aucune
// annulation en vol : on laisse la réponse arriver et on la compare au
// dernier numéro émis.
type QuerySlot struct {
	seq atomic.Uint64
}

// Next réserve le numéro de la requête qui part.
func (s *QuerySlot) Next() uint64 {
	return s.seq.Add(1)
}

// Accept dit si une réponse portant ce numéro est encore la plus récente.
func (s *QuerySlot) Accept(seq uint64) bool {
	return s.seq.Load() == seq
}

// Fetcher : la part de la passerelle backend que la vue consomme.
type Fetcher interface {
	ListHistory(ctx context.Context, query url.Values) ([]entities.Order, types.Pagination, error)
	HistoryStats(ctx context.Context) (*dto.HistoryStatsDTO, error)
}

// sessionView : créneau de consultation d'un utilisateur. Le créneau de
// péremption et la dernière requête sont propres à chaque session : la
// consultation d'un utilisateur ne périme jamais celle d'un autre.
type sessionView struct {
	slot       QuerySlot
	lastFilter Filter
	lastPage   int
	lastLimit  int
}

// Service : vue de consultation de l'historique, partagée entre toutes les
// requêtes HTTP. L'état par session est protégé par mutex.
type Service struct {
	fetcher Fetcher
	logger  *zap.Logger

	mu       sync.Mutex
	sessions map[uint64]*sessionView
}

func NewService(fetcher Fetcher, logger *zap.Logger) *Service {
	return &Service{
		fetcher:  fetcher,
		logger:   logger,
		sessions: make(map[uint64]*sessionView),
	}
}

func (s *Service) session(userID uint64) *sessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv, ok := s.sessions[userID]
	if !ok {
		sv = &sessionView{lastPage: 1, lastLimit: 10}
		s.sessions[userID] = sv
	}
	return sv
}

// Fetch interroge le backend avec le filtre courant et aplatit le résultat.
// Chaque changement de filtre ou de page repasse par ici ; une réponse
// doublée par une requête plus récente de la même session est abandonnée.
func (s *Service) Fetch(ctx context.Context, userID uint64, filter Filter, page, limit int) ([]dto.HistoryRowDTO, types.Pagination, error) {
	sv := s.session(userID)

	s.mu.Lock()
	seq := sv.slot.Next()
	sv.lastFilter = filter
	sv.lastPage = page
	sv.lastLimit = limit
	s.mu.Unlock()

	orders, pagination, err := s.fetcher.ListHistory(ctx, filter.QueryValues(page, limit))
	if err != nil {
		return nil, types.Pagination{}, err
	}

	if !sv.slot.Accept(seq) {
		s.logger.Debug("réponse historique abandonnée",
			zap.Uint64("userID", userID),
			zap.Uint64("seq", seq),
		)
		return nil, types.Pagination{}, ErrStaleResponse
	}

	return Flatten(orders), pagination, nil
}

// Refresh rejoue la dernière consultation de la session ; appelé quand
// l'interface reçoit un événement orderUpdated / orderDeleted.
func (s *Service) Refresh(ctx context.Context, userID uint64) ([]dto.HistoryRowDTO, types.Pagination, error) {
	sv := s.session(userID)

	s.mu.Lock()
	filter := sv.lastFilter
	page := sv.lastPage
	limit := sv.lastLimit
	s.mu.Unlock()

	return s.Fetch(ctx, userID, filter, page, limit)
}

// Stats remonte les agrégats (comptages par statut).
func (s *Service) Stats(ctx context.Context) (*dto.HistoryStatsDTO, error) {
	return s.fetcher.HistoryStats(ctx)
}
