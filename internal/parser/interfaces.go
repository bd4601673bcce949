package parser

import "github.com/nicolasfella/qtbridge/internal/models"

// BridgeParser defines the interface for parsing bridge files into metadata
type BridgeParser interface {
	ParseFile(path string) (*models.BridgeMetadata, error)
	ParseSource(filename, source string) (*models.BridgeMetadata, error)
}
