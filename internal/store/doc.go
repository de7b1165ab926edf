// Package store defines the persistence abstractions shared by all storage
// backends: the DocumentStore contract for the per-user hierarchical
// document tree, and the sentinel errors every implementation maps its
// backend failures onto.
package store
