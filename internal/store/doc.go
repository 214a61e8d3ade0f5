// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic. Implementations return the sentinel errors
// declared here so services and handlers never inspect driver errors.
package store
