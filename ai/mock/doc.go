// Package mock provides test doubles for the ai package interfaces.
//
// The mock embedder generates deterministic vectors from an FNV hash of the
// input text, so similarity-dependent tests are reproducible without any
// external embedding service.
package mock
