// Package token defines lexical token kinds and trivia for the formatter.
// Invariants:
//   - Token.Span matches Text exactly (Start..End); zero-width tokens have
//     an empty span at their insertion point.
//   - Missing tokens are placeholders for required tokens absent from the
//     source; they are always zero-width and never carry text.
//   - Elastic trivia (TriviaElastic) is spacing owned by the formatter, not
//     the author; suppression modes that ignore elastic trivia treat its
//     line breaks as absent.
package token
