// Package user holds the owner identity shared by reminders, scheduled
// events, and the API surface. There is no account model behind it:
// authentication is out of scope, the id is an opaque caller-provided tag.
package user

type ID string
