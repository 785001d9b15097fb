// Package viz renders the Galton board in the terminal.
//
// The front-end is a Bubble Tea program:
//
//   - [Model]: steps a [board.Engine] once per tick and maps keys to commands
//   - [Canvas]: Braille dot canvas the board is rasterized onto
//   - [Theme]: color schemes for pegs, balls, bars and the binomial overlay
//
// # Key Bindings
//
//	S, Enter - Start dropping
//	R        - Reset the board
//	+ / -    - Add or remove a row
//	] / [    - Fifty more or fewer balls
//	Space    - Pause ticks
//	T        - Cycle color themes
//	?        - Show help overlay
package viz
