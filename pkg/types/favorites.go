package types

import "strings"

// Favorites is a user's list of favorite game titles. The store keeps it
// as a single comma-joined text column; the domain layer works with a
// real ordered collection and serializes only at the store boundary.
type Favorites []string

// ParseFavorites parses the comma-joined store representation. Blank
// segments are dropped and duplicate titles collapse, so an empty string
// parses to an empty list, never to a list with one empty element.
func ParseFavorites(s string) Favorites {
	out := Favorites{}
	for _, p := range strings.Split(s, ",") {
		out = out.Add(p)
	}
	return out
}

// String serializes back to the comma-joined store representation.
// An empty list serializes to the empty string.
func (f Favorites) String() string {
	return strings.Join(f, ",")
}

// Contains reports whether title is already in the list.
func (f Favorites) Contains(title string) bool {
	for _, t := range f {
		if t == title {
			return true
		}
	}
	return false
}

// Add appends title unless it is blank or already present, and returns
// the updated list.
func (f Favorites) Add(title string) Favorites {
	title = strings.TrimSpace(title)
	if title == "" || f.Contains(title) {
		return f
	}
	return append(f, title)
}
