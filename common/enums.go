// Package common keeps enumerations shared between configuration, the
// generation engine and the deck stores, so neither has to import the other.
package common

// Kind of the slide, used both by AI outline descriptors and by template
// categories.
// ENUM(cover, contents, transition, content, end)
type SlideType int

// Slide types in the order they normally appear in a deck.
func SlideTypesInOrder() []SlideType {
	return []SlideType{SlideTypeCover, SlideTypeContents, SlideTypeTransition, SlideTypeContent, SlideTypeEnd}
}

// Specification of the deck store backing the generated slides.
// ENUM(json, sqlite)
type StoreKind int

func (s StoreKind) Ext() string {
	switch s {
	case StoreKindJson:
		return ".json"
	case StoreKindSqlite:
		return ".sqlite"
	default:
		// this should never happen
		panic("unsupported store requested")
	}
}
