// Package urls collects the external links shown by the terminal UI, the
// web page, and command help, so they can be updated in one place.
package urls
