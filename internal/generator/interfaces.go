package generator

import (
	"github.com/nicolasfella/qtbridge/internal/models"
	"github.com/nicolasfella/qtbridge/internal/registry"
)

// BridgeGenerator defines the interface for turning parsed bridge metadata
// into C++ artifacts
type BridgeGenerator interface {
	GenerateBridge(bridge *models.BridgeMetadata) (*models.GeneratedUnit, error)
	TypeRegistry() *registry.TypeRegistry
}
