package player

import "github.com/vovakirdan/tui-maze/internal/physics"

// ContactList tracks the colliders currently touching the player, oldest
// first. At most one entry is kept per collider.
type ContactList struct {
	items []physics.Contact
}

// Begin records a contact. A collider already in the list is refreshed and
// moved to the end.
func (l *ContactList) Begin(c physics.Contact) {
	l.remove(c.Other)
	l.items = append(l.items, c)
}

// End removes the contact with other. Unknown ids are ignored; the result
// reports whether anything was removed.
func (l *ContactList) End(other physics.BodyID) bool {
	return l.remove(other)
}

func (l *ContactList) remove(id physics.BodyID) bool {
	for i, c := range l.items {
		if c.Other == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Last returns the most recent contact.
func (l *ContactList) Last() (physics.Contact, bool) {
	if len(l.items) == 0 {
		return physics.Contact{}, false
	}
	return l.items[len(l.items)-1], true
}

// Len returns the number of contacts.
func (l *ContactList) Len() int {
	return len(l.items)
}

// Items returns a copy of the contacts, oldest first.
func (l *ContactList) Items() []physics.Contact {
	out := make([]physics.Contact, len(l.items))
	copy(out, l.items)
	return out
}

// Clear drops every contact.
func (l *ContactList) Clear() {
	l.items = l.items[:0]
}
