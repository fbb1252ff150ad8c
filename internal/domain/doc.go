// Package domain contains the core business entities, value objects, and
// domain logic of the application: decks, cards, their review schedule,
// ratings and the deck import document. It is shared by the API server and
// the study client and is independent of any infrastructure.
package domain
