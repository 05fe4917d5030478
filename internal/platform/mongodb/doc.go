// Package mongodb provides MongoDB implementations of the persistence
// interfaces defined in internal/store. It owns the process-wide client,
// index creation and the mapping between driver errors and store errors.
package mongodb
