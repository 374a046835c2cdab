package database

// DataStore is everything the task store needs from persistence.
// Consumers can depend on KVReader or KVWriter alone when that is enough.
type DataStore interface {
	KeyValueStore
	Close() error
}

var _ DataStore = (*Repository)(nil)
