// Package bech32encoding implements NIP-19 entities, which are bech32 encoded
// data that describes nostr data types.
//
// These are not just identifiers of users, but also include things like relay
// hints where to find them. An nprofile carries a public key in a type 0 TLV
// record followed by any number of relay URLs in type 1 records; decoding skips
// record types it does not know so that newer encoders stay readable.
//
// Every decode failure wraps exactly one of the Err* values in this package,
// use errors.Is or Reason to tell them apart.
package bech32encoding
