// Package store defines interfaces for deck and card persistence, the
// errors implementations return, and the transaction helper used by
// services that touch more than one table.
package store
