// Package fairness lets the player verify that a shuffle was fixed before
// the round was played. The dealer draws a random seed, publishes a
// commitment to it, shuffles with a stream derived deterministically from
// the seed, and reveals the seed after the round. Re-deriving the stream
// from the revealed seed reproduces the exact permutation, and re-deriving
// the commitment proves the seed was not swapped after the cards fell.
//
// # Core Types
//
// Seed: 32 bytes of entropy that fully determine one shuffle.
//
// Commitment: A curve point g^H(seed) on Ed25519, safe to publish before
// play; the seed cannot be recovered from it.
//
// Stream: A deck.Randomizer drawing from the XOF of the seed, so the same
// seed always yields the same Fisher-Yates permutation.
//
// The commitment and the shuffle stream use domain-separated XOFs of the
// seed, so publishing the commitment reveals nothing about the card order.
package fairness
