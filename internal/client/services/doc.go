// Package services contains the application services of the contacts
// client: the list controller, the edit/create session and the user
// session. They hold client-side state and reconcile it with the remote
// service; presentation lives in package cli.
package services
