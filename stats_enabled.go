//go:build chmstats

package chm

const statsEnabled = true
