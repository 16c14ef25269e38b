// Package docset generates an offline documentation docset for Qt for
// Python (PySide2). It crawls the documentation site, rewrites pages into
// a flat, offline-browsable directory, and maintains a SQLite search index
// consumed by documentation-browser tools.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package docset
