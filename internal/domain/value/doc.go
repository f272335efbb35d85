// Package value implements the value codecs of the configuration engine.
//
// Every value category has exactly one concrete Value type. Decode turns the
// raw right-hand side of a directive into a typed Value, Validate applies the
// schema entry's constraints to it, and Encode formats it back so that
// Decode(Encode(v)) is structurally equal to v.
//
// An empty right-hand side ("key =") is Empty for every category and always
// valid. Decode only rejects input it cannot represent; range and membership checks
// happen in Validate. A value that cannot be decoded is kept as Unparsed so the
// raw text survives a round trip.
package value
