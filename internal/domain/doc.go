// Package domain holds the core entities of the flashcard system: cards,
// sets, review dates, and the typed hierarchy nodes a user's folder tree is
// decoded into. Everything here is pure data and pure functions; persistence
// and transport live elsewhere.
package domain
