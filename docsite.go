// Package docsite provides the documentation site for the wallet and
// authentication service: a static search index, a search controller, page
// content extraction for clipboard export, and a table of contents builder.
//
// This package contains domain types, pure logic and interfaces following
// Ben Johnson's Standard Package Layout. Implementations that touch rendered
// HTML, the browser, the clipboard or storage live in subdirectories named
// after their primary dependency (e.g., goquery/, goldmark/, sqlite/).
package docsite
