// Package tui renders the pages of the client in the terminal with Bubble Tea.
//
// A [RootModel] keeps exactly one mounted page. Navigation is requested with
// a [NavigateTo] message; mounting a page cancels the context of the previous
// one and bumps a mount generation, so results of requests that finish after
// the user has left are dropped instead of being applied to the wrong page.
//
// Protected pages are wrapped in a bootstrap gate that reconciles the stored
// session with the server before the page itself is initialised. Services
// leave for the login page through a [Navigator], which is created before the
// program and bound to it once the program exists.
package tui
