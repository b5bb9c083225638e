// Package interop converts bit sets to and from the in-memory bitmap types of
// other libraries. Conversions copy; nothing is shared with the source.
package interop
