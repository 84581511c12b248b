package pg

// Store combines the postgres Reader and Writer over one pool.
type Store struct {
	*Reader
	*Writer
	pool *ConnectionPool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{
		Reader: NewReader(pool),
		Writer: NewWriter(pool),
		pool:   pool,
	}
}

func (s *Store) Close() {
	s.pool.Close()
}
