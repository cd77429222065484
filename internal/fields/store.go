package fields

// Store holds the current value of every named field on one page. Reads never
// fail and writes always succeed; validation belongs to the assembler.
//
// A Store is owned by a single page session and is not safe for concurrent
// use: mutations are serialised by the host's event loop.
type Store struct {
	values    map[ID]string
	observers []*observer
	nextID    int
}

type observer struct {
	id    int
	watch map[ID]struct{}
	fn    func(ID)
}

func NewStore(definitions []Definition) *Store {
	store := &Store{
		values: make(map[ID]string, len(definitions)),
	}
	for _, definition := range definitions {
		store.values[definition.ID] = definition.Default
	}
	return store
}

func (s *Store) Get(id ID) string {
	return s.values[id]
}

func (s *Store) Has(id ID) bool {
	_, ok := s.values[id]
	return ok
}

// Set writes value and synchronously notifies every observer watching id.
func (s *Store) Set(id ID, value string) {
	s.values[id] = value

	for _, obs := range append([]*observer(nil), s.observers...) {
		if _, ok := obs.watch[id]; ok {
			obs.fn(id)
		}
	}
}

func (s *Store) Snapshot() Snapshot {
	values := make(map[ID]string, len(s.values))
	for id, value := range s.values {
		values[id] = value
	}
	return Snapshot{values: values}
}

// Subscribe registers fn for writes to any of ids and returns the matching
// unsubscribe func.
func (s *Store) Subscribe(ids []ID, fn func(ID)) func() {
	watch := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		watch[id] = struct{}{}
	}
	s.nextID++
	obs := &observer{id: s.nextID, watch: watch, fn: fn}
	s.observers = append(s.observers, obs)

	return func() {
		for index, candidate := range s.observers {
			if candidate.id == obs.id {
				s.observers = append(s.observers[:index:index], s.observers[index+1:]...)
				return
			}
		}
	}
}

// Snapshot is an immutable view of a Store at one point in time.
type Snapshot struct {
	values map[ID]string
}

func SnapshotOf(values map[ID]string) Snapshot {
	copied := make(map[ID]string, len(values))
	for id, value := range values {
		copied[id] = value
	}
	return Snapshot{values: copied}
}

func (s Snapshot) Get(id ID) string {
	return s.values[id]
}

func (s Snapshot) Values() map[ID]string {
	copied := make(map[ID]string, len(s.values))
	for id, value := range s.values {
		copied[id] = value
	}
	return copied
}
