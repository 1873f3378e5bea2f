package executor

import "sync"

// OrgRegistry resolves beneficiary identities. A deployment wires one
// in to restrict game creation to verified organizations and to serve
// metadata on queries; without one every beneficiary is accepted.
type OrgRegistry interface {
	IsVerified(addr string) (bool, error)
	ResolveMetadataURI(addr string) (string, error)
}

var (
	registryMu  sync.RWMutex
	orgRegistry OrgRegistry
)

// SetOrgRegistry installs the registry, nil to remove it.
func SetOrgRegistry(r OrgRegistry) {
	registryMu.Lock()
	defer registryMu.Unlock()
	orgRegistry = r
}

// GetOrgRegistry returns the installed registry, possibly nil.
func GetOrgRegistry() OrgRegistry {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return orgRegistry
}
