// Package service contains the application use cases behind the HTTP API.
// It orchestrates the domain types, the SRS scheduler and the repositories
// defined in internal/store.
//
// Key components:
//
//   - DeckService lists, fetches, imports and deletes decks and returns the
//     due cards of a deck.
//   - ReviewService applies a rating to a card through the scheduler and
//     persists the new schedule.
//
// Operations that touch several rows run inside store.RunInTransaction.
// Expected conditions are reported with the store and domain sentinel errors
// so the API layer can map them with errors.Is; everything else is wrapped in
// a *ServiceError.
package service
