// Package api implements the HTTP handlers of the deck API: deck listing,
// import and deletion, due-card queries, review submission and card
// previews. Handlers decode and validate requests, call the services and
// translate service errors into status codes and safe messages.
//
// The wire types in models.go are shared with the study client.
package api
