// Package compose assembles self-contained HTML documents from page
// templates and the shared stylesheet.
//
// A Composer parses every page of every template set once at construction;
// composing a document renders the set's pages in their fixed order against
// one data record and wraps the concatenated output in a complete HTML
// document with the stylesheet inlined.
package compose
