// Package statuslist implements the compact status list structure used to
// publish the revocation or suspension state of a large population of tokens
// as a single compressed bitstream. Statuses are packed at a fixed width of
// 1, 2, 4, or 8 bits each, least significant bits first, and the packed
// buffer is zlib-compressed. The structure travels either as JSON, with the
// payload in unpadded URL-safe base64, or as CBOR, with the payload as a raw
// byte string.
//
// A Builder accumulates statuses in index order and produces an immutable
// StatusList; a Decoder inflates a list once at construction and then serves
// random-access reads, safe for concurrent use.
package statuslist
