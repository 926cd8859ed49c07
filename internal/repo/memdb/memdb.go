// Package memdb keeps logs and endpoints in process memory. It follows the
// same join and ordering rules as the Postgres repositories.
package memdb

import (
	"sync"

	"github.com/Egor213/EndpointLog/internal/domain"
)

type logRecord struct {
	entry domain.LogEntry
	// owner is captured from the endpoint at insert time.
	owner string
	seq   uint64
}

type DB struct {
	mu        sync.RWMutex
	endpoints map[string]domain.Endpoint
	logs      map[string]*logRecord
	seq       uint64
}

func New() *DB {
	return &DB{
		endpoints: make(map[string]domain.Endpoint),
		logs:      make(map[string]*logRecord),
	}
}
