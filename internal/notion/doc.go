// Package notion queries the group's calendar database through the Notion
// REST API.
//
// A single query fetches every record dated after a given instant, sorted
// ascending, and the earliest one is mapped into an event.Event. Queries are
// never retried; failures surface to the caller as typed errors.
package notion
