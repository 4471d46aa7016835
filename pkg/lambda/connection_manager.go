package lambda

import (
	"context"
	"sync"

	"todo-list-api/internal/config"
	"todo-list-api/pkg/server"
)

// ConnectionManager caches the service container across warm Lambda
// invocations so the store client is built once per execution environment
type ConnectionManager struct {
	mu        sync.Mutex
	container *server.Container
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the process-wide connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// GetContainer returns the cached service container, building it on the
// first (cold start) invocation
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return cm.container, nil
	}

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		return nil, err
	}

	container, err := server.NewContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cm.container = container
	return container, nil
}

// Cleanup releases the cached container and its resources
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container == nil {
		return nil
	}

	err := cm.container.Close()
	cm.container = nil
	return err
}
