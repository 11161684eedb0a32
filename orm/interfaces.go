package orm

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/x"
)

// Object is a model together with the key it is stored under.
type Object interface {
	Keyed
	Cloneable
	x.Validater
	Value() quorum.Persistent
}

// Keyed is anything that carries its own primary key.
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable returns an independent copy, used as a template to load new
// objects into.
type Cloneable interface {
	Clone() Object
}

// CloneableData is the value of an object.
type CloneableData interface {
	x.Validater
	quorum.Persistent
	Copy() CloneableData
}

// Model is another name for CloneableData, used where an entity is meant.
type Model = CloneableData
