package model

// KeyValue is the storage capability the stores are built on: whole-value
// reads and writes of text under a key. Each logical record is one JSON
// document under one key; there is no partial update and no locking, so
// concurrent writers race and the last write wins. The stores assume a single
// logical writer.
type KeyValue interface {
	// Get returns the stored value and true, or "" and false if the key is absent.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
