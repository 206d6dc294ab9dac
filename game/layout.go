package game

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseLayout builds the initial state of a layout:
//
//	% wall   . food   o capsule   P pacman   G ghost
//
// Ghosts are numbered in reading order (agent 1 is the first G from the top left).
func ParseLayout(text string) (*GameState, error) {
	var rows []string
	for _, line := range strings.Split(strings.Trim(text, "\r\n"), "\n") {
		rows = append(rows, strings.TrimRight(line, "\r"))
	}
	if len(rows) == 0 || rows[0] == "" {
		return nil, errors.New("empty layout")
	}

	width, height := len(rows[0]), len(rows)
	walls := NewGrid(width, height)
	food := NewGrid(width, height)
	var capsules []Position
	var ghosts []Ghost
	pacman := Position{-1, -1}

	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Errorf("layout row %d has width %d, expected %d", y, len(row), width)
		}
		for x, cell := range row {
			p := Position{x, y}
			switch cell {
			case '%':
				walls.Set(p, true)
			case '.':
				food.Set(p, true)
			case 'o':
				capsules = append(capsules, p)
			case 'P':
				if pacman.X >= 0 {
					return nil, errors.Errorf("layout has a second pacman at %v", p)
				}
				pacman = p
			case 'G':
				ghosts = append(ghosts, Ghost{Position: p, Start: p, Direction: Stop})
			case ' ':
			default:
				return nil, errors.Errorf("unknown layout character %q at %v", cell, p)
			}
		}
	}
	if pacman.X < 0 {
		return nil, errors.New("layout has no pacman")
	}

	return NewGameState(walls, food, capsules, pacman, ghosts), nil
}

// LoadLayout parses one of the built-in layouts by name.
func LoadLayout(name string) (*GameState, error) {
	text, ok := Layouts[name]
	if !ok {
		return nil, errors.Errorf("unknown layout %q", name)
	}
	gs, err := ParseLayout(text)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse layout %q", name)
	}
	return gs, nil
}

// Layouts are the built-in layouts by name.
var Layouts = map[string]string{
	"testClassic": `
%%%%%
% . %
%.G.%
% . %
%. .%
%   %
%  .%
%   %
%P .%
%%%%%`,
	"minimaxClassic": `
%%%%%%%%%
%.P    G%
% %.%G%%%
%G    %%%
%%%%%%%%%`,
	"trappedClassic": `
%%%%%%%%
%   P G%
%G%%%%%%
%....  %
%%%%%%%%`,
	"openClassic": `
%%%%%%%%%%%%
%P.........%
%..........%
%....o.....%
%..........%
%.........G%
%%%%%%%%%%%%`,
}
