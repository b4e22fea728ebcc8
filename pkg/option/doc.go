// Package option contains Option[T], a value that is either present (Some)
// or absent (None). It is the projection target of try.Try.ToOptional.
//
// Highlights:
// - Some/None: construct an Option
// - OfNullable: Some unless the value is a nil pointer, map, slice, chan, func or interface
// - Get/MustGet/OrElse: read the value
package option
