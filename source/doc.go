// Package source resolves source identifiers into readable streams.
//
// Openers exist for the local filesystem (with transparent gzip, zstd and
// lz4 decompression selected by file extension), S3, and MinIO/S3-compatible
// object storage. Remote openers support optional byte-rate throttling.
package source
