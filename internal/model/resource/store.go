package resource

// Store exposes static content for HTTP handlers and the terminal client.
type Store interface {
	Bundle() Bundle
	QuickReply(index int) (string, bool)
}

// MemoryStore implements Store with an in-memory bundle.
type MemoryStore struct {
	bundle Bundle
}

// NewMemoryStore returns a MemoryStore serving a copy of b.
func NewMemoryStore(b Bundle) *MemoryStore {
	return &MemoryStore{bundle: clone(b)}
}

// Bundle returns a copy of the stored content.
func (s *MemoryStore) Bundle() Bundle {
	return clone(s.bundle)
}

// QuickReply looks up a quick-reply option by position.
func (s *MemoryStore) QuickReply(index int) (string, bool) {
	if index < 0 || index >= len(s.bundle.QuickReplies) {
		return "", false
	}
	return s.bundle.QuickReplies[index], true
}

func clone(b Bundle) Bundle {
	b.Helplines = append([]Helpline(nil), b.Helplines...)
	b.QuickReplies = append([]string(nil), b.QuickReplies...)
	return b
}
