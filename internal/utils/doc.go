// Package utils provides general-purpose helpers shared by the client
// packages: the resty HTTP client wrapper, id generation and the conversion
// of status HTML into terminal text.
package utils
