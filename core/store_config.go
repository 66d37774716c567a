package core

const (
	EngineBadger = "badger"
	EngineMemory = "memory"
)

type StoreConfig struct {
	// EngineBadger or EngineMemory.
	Engine string
	// Badger directory; ignored when InMemory is set or Engine is EngineMemory.
	Path         string
	InMemory     bool
	CacheEnabled bool
}
