package platform

import (
	"crypto/rand"

	"github.com/google/uuid"
)

const (
	nodeGroupIDPrefix   = "ng-"
	nodeGroupIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	nodeGroupIDLength   = 10
)

// NewID returns a time-ordered UUIDv7, so IDs sort in creation order.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewNodeGroupID returns a short lowercase node group ID such as ng-k3x9a0b2qz.
func NewNodeGroupID() string {
	b := make([]byte, nodeGroupIDLength)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand: " + err.Error())
	}
	for i := range b {
		b[i] = nodeGroupIDAlphabet[b[i]%byte(len(nodeGroupIDAlphabet))]
	}
	return nodeGroupIDPrefix + string(b)
}
