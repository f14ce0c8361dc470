package main

import "embed"

// data/ must sit next to this file: //go:embed cannot reach parent directories.
//
//go:embed data/balance.yaml
var dataFS embed.FS
