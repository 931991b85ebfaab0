// Package progress persists the per-directory watch counter.
//
// State lives in a sentinel JSON file inside the watched directory. Loading a
// directory without one yields a fresh zero state without touching storage;
// saving writes through a temp file and rename so a reader never sees a
// partial file. Unknown keys in the state file survive a load/save round trip
// so future versions can extend the format without data loss.
package progress
