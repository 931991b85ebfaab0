// Command watchnext tracks per-directory watch progress for locally stored
// series and drives an interactive pick/play/confirm loop around an external
// media player.
package main
