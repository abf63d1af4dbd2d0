package web

import "embed"

// StaticFS is served under /static/ and holds project.css.
//
//go:embed static/*
var StaticFS embed.FS
