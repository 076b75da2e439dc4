// Package news fetches story listings from a Hacker News style search endpoint.
//
// The endpoint answers a GET with a JSON body shaped as
//
//	{ "hits": [ { "objectID": "1", "title": "..." }, ... ] }
//
// Any other shape is treated as a failed fetch. Every error returned by this
// package wraps ErrFetchFailed.
package news
