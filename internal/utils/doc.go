// Package utils holds the low-level helpers shared by the oaikit internals:
// single-attempt HTTP calls with classified failures ([DoPost], [DoGet]),
// string helpers for log output and a small interval [Timer].
package utils
