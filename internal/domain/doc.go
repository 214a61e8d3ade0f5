// Package domain contains the catalog entities of the geek shop (universes,
// authors, characters, comics, devices, sweets, toys), the links between them,
// shop users, and the pure rules that apply to them: field validation and slug
// derivation. It has no knowledge of HTTP or SQL.
package domain
