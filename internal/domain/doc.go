// Package domain holds the transport-independent types of the deck pipeline:
// inputs, intermediate documents, run results and the error taxonomy shared
// by every stage.
package domain
