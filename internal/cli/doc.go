// Package cli is the interactive front end of the snooze client: a small
// read–eval–print loop that renders story lists as text and wires user
// commands (login, submit, favorite, delete) to the service layer.
//
// It is the counterpart of the web UI's page-rendering glue: state lives in
// an App value, and every state-changing command re-renders the affected
// list by looking up favorite/ownership markers by story id.
package cli
