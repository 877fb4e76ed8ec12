// Package qualname renders and matches qualified type names such as
// "github.com/acme/units.byteTag".
package qualname
