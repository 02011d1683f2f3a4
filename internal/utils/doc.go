// Package utils provides small helpers shared by the client: the
// preconfigured resty HTTP client and request id generation.
package utils
