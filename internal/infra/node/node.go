package node

import (
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Node describes the running terminal process.
type Node struct {
	ID         string
	Hostname   string
	Version    string
	CommitHash string
	StartedAt  time.Time
}

// Set at build time with -ldflags.
var Version = "development"
var CommitHash = "unknown"

var (
	nodeOnce sync.Once
	nodeID   string
	hostname string
	started  time.Time
)

// GetNodeInfo returns the process metadata. The ID is random and stable for
// the lifetime of the process.
func GetNodeInfo() *Node {
	nodeOnce.Do(func() {
		nodeID = uuid.NewString()
		started = time.Now()
		name, err := os.Hostname()
		if err != nil || name == "" {
			name = "localhost"
		}
		hostname = name
	})

	return &Node{
		ID:         nodeID,
		Hostname:   hostname,
		Version:    Version,
		CommitHash: CommitHash,
		StartedAt:  started,
	}
}
