package config

// StorageConfig holds settings for game snapshot persistence.
type StorageConfig struct {
	// DataDir is the badger directory; empty disables persistence
	DataDir string

	// InMemory keeps the store in memory only (tests and demos)
	InMemory bool

	// AutoSave writes every game change through to the store; otherwise
	// games are saved on shutdown
	AutoSave bool

	// SyncWrites makes badger fsync each write
	SyncWrites bool
}

// NewStorageConfig creates a StorageConfig with default values.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{}
}

// Enabled reports whether a store should be opened.
func (s *StorageConfig) Enabled() bool {
	return s.DataDir != "" || s.InMemory
}
