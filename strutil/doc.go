// Package strutil provides small string utilities: a byte-safe
// single-character exploder and a Subversion-style timestamp formatter.
package strutil
