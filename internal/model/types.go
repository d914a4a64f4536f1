// Package model defines shared data structures.
package model

// Config defines practice settings.
type Config struct {
	File       string
	Words      int
	Seed       int64
	Color      bool
	Scored     bool
	AutoSubmit bool
	Raw        bool
}

