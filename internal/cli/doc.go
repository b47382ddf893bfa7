// Package cli implements the interactive TaskPilot client: a REPL over the
// backend API with a local cache for offline reads. Typical flow: restore or
// prompt for a session, then accept commands for chat, conversations, tasks
// and reminders until exit.
//
// The commands available depend on session state:
//
//   - Register / Login / Logout / WhoAmI
//   - Chat — send a message in the current conversation
//   - Conversations / Tasks / Reminders — list and manage
//   - Status — connectivity, identity, storage
//
// See App, runREPL, and the connection watcher in package state for details.
package cli
