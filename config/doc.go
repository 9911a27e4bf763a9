// Package config loads and validates wordseg configuration.
//
// Settings live in a TOML file with [segmenter], [lexicon], [report] and
// [reference] sections. Missing keys keep the values from Default, so an
// empty file is a valid configuration.
package config
