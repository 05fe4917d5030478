// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying document database from the
// HTTP layer. Write operations return acknowledgement results shaped like
// the database's own (inserted ID, matched/modified/deleted counts), which
// the API passes straight through to clients.
package store
