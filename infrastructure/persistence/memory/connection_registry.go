package memory

import (
	"context"
	"sort"
	"sync"

	"accessengine-backend/application/ports"
)

// ConnectionRegistry tracks live dashboard connections in memory. It
// backs local development, where the notifier writes straight to the
// process instead of the API Gateway management endpoint.
type ConnectionRegistry struct {
	mu          sync.RWMutex
	connections map[string]ports.Connection
}

// NewConnectionRegistry creates an empty connection registry
func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		connections: make(map[string]ports.Connection),
	}
}

// Register stores a new connection
func (r *ConnectionRegistry) Register(ctx context.Context, conn ports.Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.connections[conn.ConnectionID] = conn
	return nil
}

// Deregister removes a connection
func (r *ConnectionRegistry) Deregister(ctx context.Context, connectionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.connections, connectionID)
	return nil
}

// ListByTopic retrieves all connections subscribed to a topic, oldest
// connection first
func (r *ConnectionRegistry) ListByTopic(ctx context.Context, topic string) ([]ports.Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]ports.Connection, 0)
	for _, conn := range r.connections {
		if conn.Topic == topic {
			result = append(result, conn)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].ConnectedAt.Equal(result[j].ConnectedAt) {
			return result[i].ConnectedAt.Before(result[j].ConnectedAt)
		}
		return result[i].ConnectionID < result[j].ConnectionID
	})
	return result, nil
}
