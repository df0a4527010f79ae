package model

import "time"

// Project represents a selectable directory under the projects root
type Project struct {
	Name       string    // directory base name
	Path       string    // absolute path
	ModifiedAt time.Time // directory mtime at scan time
}
