//go:build !simdebug

package utils

const panicOnInvariant = false
