package db

import _ "embed"

// Schema creates the users and habits tables. It is safe to apply on every
// start.
//
//go:embed init.sql
var Schema string
