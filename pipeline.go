// Package pipeline drives the external assembly, annotation,
// pan-genome and variant-calling programs for a set of strains,
// and holds the loggers shared across the tool.
package pipeline

import (
	"log"
)

var (
	Info *log.Logger
	Warn *log.Logger
)
