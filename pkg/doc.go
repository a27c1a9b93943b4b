// Package pkg provides the libraries behind punishboard, a designer and
// player for Monopoly-style punishment boards.
//
// # Overview
//
// A board is a square ring of tiles. Four fixed corners ("GO!" plus three
// editable ones) sit at the corners and the player's spaces are split
// evenly over the four sides, so the list must hold a positive multiple of
// four spaces. A token starts on GO! and advances by die rolls.
//
//  1. [board] - perimeter layout and tile placement (pure)
//  2. [dice] - rolls and token movement (pure, injectable RNG)
//  3. [session] - the mutable session: pre-game editor, start, roll, reset
//  4. [store] - persistence of the pre-game list (file, Redis, MongoDB)
//  5. [pipeline] - validate → layout → render, with an artifact [cache]
//  6. [render] - SVG, PNG, PDF, JSON, terminal and Graphviz output
//
// # Architecture
//
//	space list ([store])
//	      ↓
//	[session] editor → Start
//	      ↓
//	[board].BuildPerimeter → Layout.Tiles
//	      ↓
//	[render/sink] (SVG, JSON, text) / [render/ring] (DOT)
//
// Rolls go through [dice].RollAndAdvance; [session] records the result and
// announces it for a few seconds.
//
// # Errors
//
// Validation failures carry codes from [errors]: EMPTY_SPACE_LIST,
// INVALID_SPACE_COUNT, DUPLICATE_SPACE_NAME and EMPTY_SPACE_NAME. They are
// reported to the user and never change session state.
//
// [board]: github.com/matzehuels/punishboard/pkg/board
// [dice]: github.com/matzehuels/punishboard/pkg/dice
// [session]: github.com/matzehuels/punishboard/pkg/session
// [store]: github.com/matzehuels/punishboard/pkg/store
// [pipeline]: github.com/matzehuels/punishboard/pkg/pipeline
// [cache]: github.com/matzehuels/punishboard/pkg/cache
// [render]: github.com/matzehuels/punishboard/pkg/render
// [render/sink]: github.com/matzehuels/punishboard/pkg/render/sink
// [render/ring]: github.com/matzehuels/punishboard/pkg/render/ring
// [errors]: github.com/matzehuels/punishboard/pkg/errors
package pkg
