/*
Package nodeid provides a structured, type-safe representation for resource
identifiers within the system, based on the canonical format `Type[title]`.

The type part is a `::`-separated sequence of identifier segments, e.g.
`Foo::Bar`. Every segment starts with an upper-case character once the
address has been canonicalized, so `foo::bar[x]` and `Foo::Bar[x]` name the
same resource. The title is free-form text and may itself contain brackets.

This package enforces the identifier schema and centralizes all formatting,
parsing and canonicalization logic, so the manifest front-end, the resource
registry and the plan agree on a single notion of identity.
*/
package nodeid
