// Package docserve provides an in-process documentation corpus manager.
// It ingests markdown documentation pages from remote sources, indexes
// their metadata for full-text search, and serves paginated slices or
// heading-bounded sections of page content to a protocol layer.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., mem/, lru/, goldmark/, http/).
package docserve
