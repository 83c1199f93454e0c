// Package lsp illustrates the Liskov Substitution Principle with birds.
//
// [LegacyPenguin] embeds [LegacyBird] and overrides Fly to fail, so code that
// works with any LegacyBird breaks when handed a penguin. In the corrected
// design every [Flyable] honors Fly: [Penguin] answers with a message
// instead of an error.
package lsp
