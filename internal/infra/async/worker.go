package async

import (
	"context"
	"sync"
)

// Worker is a long-running loop. Run must call done when it returns.
type Worker interface {
	Run(context.Context, func())
	Shutdown()
}

// Group starts workers and waits for all of them before shutting them down.
type Group struct {
	wg      sync.WaitGroup
	mu      sync.Mutex
	workers []Worker
}

func NewGroup() *Group {
	return &Group{}
}

func (g *Group) Go(ctx context.Context, worker Worker) {
	g.mu.Lock()
	g.workers = append(g.workers, worker)
	g.mu.Unlock()

	g.wg.Add(1)
	go worker.Run(ctx, g.wg.Done)
}

// Wait blocks until every worker returned, then calls Shutdown on each in
// reverse start order.
func (g *Group) Wait() {
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := len(g.workers) - 1; i >= 0; i-- {
		g.workers[i].Shutdown()
	}
}
