package orbit

import (
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
)

func TestShaderChanged(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "a.vert")
	files := map[string]bool{vert: true}

	tests := []struct {
		name string
		file string
		op   fsnotify.Op
		want bool
	}{
		{"write", vert, fsnotify.Write, true},
		{"create", vert, fsnotify.Create, true},
		{"rename", vert, fsnotify.Rename, true},
		{"write and chmod", vert, fsnotify.Write | fsnotify.Chmod, true},
		{"chmod only", vert, fsnotify.Chmod, false},
		{"remove", vert, fsnotify.Remove, false},
		{"other file", filepath.Join(dir, "b.vert"), fsnotify.Write, false},
		{"same name elsewhere", filepath.Join(dir, "sub", "a.vert"), fsnotify.Write, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shaderChanged(files, fsnotify.Event{Name: tt.file, Op: tt.op})
			assert.Equal(t, tt.want, got)
		})
	}
}
