// Package client is the study client's HTTP transport to the deck API. A
// *Client satisfies session.CardSource and session.ReviewSubmitter and also
// exposes the deck list, import and delete calls used by cmd/study.
package client
