// Package processor contains the application logic behind the command
// line. It converts single texts, runs batch files into card directories,
// exports decks, archives the cards directory and starts the GUI or the
// HTTP service. This package is the coordinator between all other
// components.
package processor
