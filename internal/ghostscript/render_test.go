// seehuhn.de/go/tikz - create TikZ graphics from Go
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ghostscript

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestMissingExecutable(t *testing.T) {
	const gs = "no-such-ghostscript-binary"
	if IsAvailable(gs) {
		t.Fatal("nonexistent executable reported as available")
	}
	err := RenderPNG(context.Background(), gs, "in.pdf", "out.png", 72, false)
	if !errors.Is(err, ErrNoGhostscript) {
		t.Errorf("expected ErrNoGhostscript, got %v", err)
	}
}

func TestAvailabilityIsCached(t *testing.T) {
	first := IsAvailable("gs")
	gsMutex.Lock()
	cached, seen := gsFound["gs"]
	gsMutex.Unlock()
	if !seen || cached != first {
		t.Errorf("result not cached: seen=%t cached=%t first=%t", seen, cached, first)
	}
}
