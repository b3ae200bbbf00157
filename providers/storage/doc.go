// Package storage persists downloaded images on an afero file system.
package storage
