package catalog

// Provider is the read-only lookup surface the rest of the service consumes.
// The checkout engine only needs Title; handlers use List/Get.
type Provider interface {
	List() []Game
	Get(id string) (*Game, bool)
	Title(id string) (string, bool)
}

// Static serves an in-memory, immutable game list. The catalog is reference
// data: it is never written by this service.
type Static struct {
	games []Game
	byID  map[string]*Game
}

func NewStatic(games []Game) *Static {
	s := &Static{games: games, byID: make(map[string]*Game, len(games))}
	for i := range s.games {
		s.byID[s.games[i].ID] = &s.games[i]
	}
	return s
}

// Default returns a provider over the built-in catalog.
func Default() *Static { return NewStatic(games) }

func (s *Static) List() []Game { return s.games }

func (s *Static) Get(id string) (*Game, bool) {
	g, ok := s.byID[id]
	return g, ok
}

func (s *Static) Title(id string) (string, bool) {
	if g, ok := s.byID[id]; ok {
		return g.Title, true
	}
	return "", false
}
