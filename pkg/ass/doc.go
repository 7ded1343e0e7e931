// Package ass parses and serializes SubStation Alpha v4+ subtitle scripts.
//
// Parsing preserves comments, blank lines and unrecognized sections so a
// document can be edited and rewritten without losing content the parser has
// no schema for. Serialization is canonical: styles and events are re-emitted
// with a fixed Format field order, so writing a freshly parsed document
// normalizes its layout while keeping every field value intact.
package ass
