// Package textproc implements the text side of symptom identification:
// input validation, ASCII folding, clause breaking, sentence segmentation,
// punctuation stripping, tokenization, lemmatization and stopword removal.
//
// Everything here is pure and safe for concurrent use. Spell correction and
// vocabulary filtering live with the classifier, which owns those dependencies.
package textproc
