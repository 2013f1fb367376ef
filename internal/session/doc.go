// Package session holds the in-memory session state of the client: who is
// logged in and with which bearer token.
//
// A [Store] is an explicitly owned object handed to the layers that need it;
// there is no package-level instance. The store never touches durable
// storage itself: the owning service persists every mutation, and restores
// the persisted record once at startup through [Store.Restore] followed by
// [Store.MarkHydrated].
package session
