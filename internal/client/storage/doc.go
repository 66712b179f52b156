// Package storage provides the client's persistent key-value store.
//
// # Overview
//
// A Backend is the durable store (SQLite on disk, see SQLiteBackend). A
// SafeStore sits in front of it and probes the backend with a trial
// write+delete before every operation. When the probe fails, because the
// backend is missing, read-only, full or closed, the operation is served by an
// in-memory map that lives as long as the process. Callers never see an
// error, only reduced durability.
//
// The store has no key enumeration and no expiry. Values are plain strings.
//
// # Concurrency
//
// SafeStore is safe for concurrent use. The probe and the operation it
// guards run under one mutex, so a Set cannot interleave with a Remove of
// the same key.
package storage
