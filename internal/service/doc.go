// Package service contains the geek shop use cases: catalog management for
// universes, authors, characters, comics and merchandise, the comics link
// tables, and user registration and authentication.
//
// Services sit between the HTTP handlers in internal/api and the store
// interfaces in internal/store. They:
//
//   - derive slugs and validate entities before anything is written
//   - check title and name uniqueness, returning ErrTitleTaken or ErrNameTaken
//   - run multi-row writes, such as a comics row together with its links,
//     inside store.RunInTransaction
//   - return store not-found errors when a parent of a sub-resource is missing
//
// Services depend only on the store interfaces, never on a concrete database.
package service
