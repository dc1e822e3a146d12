// Package ui holds the color themes shared by the interactive page and the
// plain-text report.
package ui
