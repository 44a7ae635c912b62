package store

// Memory is an in-process KV adapter for tests and ephemeral runs. Nothing
// survives the process.
type Memory struct {
	m map[string]string
}

// NewMemory returns an empty in-memory adapter.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(key, value string) error {
	s.m[key] = value
	return nil
}

func (s *Memory) Close() error { return nil }
