package core

// Entity is a unique identifier for a world entity
type Entity uint64
