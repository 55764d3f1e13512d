// Package gptnotes provides a CLI note-taking tool. It takes a short prompt,
// optionally scrapes web pages for supporting context, asks a hosted
// chat-completion model to write markdown notes, and appends the result to
// a notes folder.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, openai/).
package gptnotes
