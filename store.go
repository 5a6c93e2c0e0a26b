package tileatlas

// TextureStore is the storage capability the builder depends on. It is
// the only boundary between the builder and a host asset system: the
// builder reads previously registered tile textures from it during
// Finish and writes the composed atlas texture back through it.
//
// H is the host's opaque texture handle type. The builder treats
// handles as inert map keys; it never manages their lifecycle.
//
// Any implementation satisfying this contract works: an in-memory map
// (see MemoryStore), a host asset database, a test double. The builder
// requires exclusive access to the store for the duration of Finish;
// if the store is shared elsewhere, the host must serialize access.
type TextureStore[H comparable] interface {
	// Get returns the texture for a handle, or false if absent.
	Get(handle H) (*Texture, bool)

	// Add stores a texture and returns a new handle for it.
	Add(tex *Texture) H
}

// MemoryStore is an in-memory TextureStore with int handles, suitable
// for tests and standalone tools that do not run inside a host asset
// system.
//
// MemoryStore is not safe for concurrent use.
type MemoryStore struct {
	textures map[int]*Texture
	nextID   int
}

// NewMemoryStore creates an empty in-memory texture store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{textures: make(map[int]*Texture)}
}

// Get returns the texture for a handle, or false if absent.
func (s *MemoryStore) Get(handle int) (*Texture, bool) {
	tex, ok := s.textures[handle]
	return tex, ok
}

// Add stores a texture and returns a new handle for it.
func (s *MemoryStore) Add(tex *Texture) int {
	id := s.nextID
	s.nextID++
	s.textures[id] = tex
	return id
}

// Len returns the number of stored textures.
func (s *MemoryStore) Len() int {
	return len(s.textures)
}
