// Package services contains the client-side application services:
// session and credential lifecycle, the favorite toggle, durable form
// drafts, and article operations over the platform API.
package services
