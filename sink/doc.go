// Package sink defines the storage contract at the end of the ingestion
// pipeline and provides an in-memory reference implementation.
package sink
