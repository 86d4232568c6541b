// Package openapi derives constraint specifications from OpenAPI documents,
// so hosts that already describe their payload types in an API document get a
// matching validation spec without restating the facets by hand. Only the
// component schemas are consulted; paths and operations are ignored.
package openapi
